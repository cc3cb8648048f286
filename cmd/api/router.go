package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cinema-backend/internal/shared/middleware"
	"cinema-backend/internal/shared/response"
	"cinema-backend/pkg/container"
)

// setupRouter đăng ký middlewares và toàn bộ routes
func setupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	api := router.Group("/api")

	api.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(api, c)
	setupAuthorRoutes(api, c)
	setupFilmRoutes(api, c)
	setupSpectatorRoutes(api, c)
	setupRatingRoutes(api, c)
	setupFavoriteRoutes(api, c)

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/token/refresh", c.AuthHandler.Refresh)
		auth.POST("/logout", c.AuthHandler.Logout)
	}
}

func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	{
		// Public reads
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)

		// Authenticated writes
		protected := authors.Group("", middleware.AuthMiddleware(c.JWTManager))
		{
			protected.POST("", c.AuthorHandler.Create)
			protected.PATCH("/:id", c.AuthorHandler.Update)
			protected.DELETE("/:id", c.AuthorHandler.Delete)
		}
	}
}

func setupFilmRoutes(api *gin.RouterGroup, c *container.Container) {
	films := api.Group("/films")
	{
		films.GET("", c.FilmHandler.List)
		films.GET("/:id", c.FilmHandler.GetByID)

		protected := films.Group("", middleware.AuthMiddleware(c.JWTManager))
		{
			protected.POST("", c.FilmHandler.Create)
			protected.PATCH("/:id", c.FilmHandler.Update)
			protected.POST("/:id/archive", c.FilmHandler.Archive)
			protected.DELETE("/:id", c.FilmHandler.Delete)
		}
	}
}

func setupSpectatorRoutes(api *gin.RouterGroup, c *container.Container) {
	spectators := api.Group("/spectators", middleware.AuthMiddleware(c.JWTManager))
	{
		spectators.GET("/me", c.SpectatorHandler.GetProfile)
		spectators.PATCH("/me", c.SpectatorHandler.UpdateProfile)
		spectators.POST("/me/avatar", c.SpectatorHandler.UploadAvatar)
	}
}

func setupRatingRoutes(api *gin.RouterGroup, c *container.Container) {
	ratings := api.Group("/ratings", middleware.AuthMiddleware(c.JWTManager))
	{
		ratings.GET("/films", c.RatingHandler.ListFilmRatings)
		ratings.POST("/films", c.RatingHandler.RateFilm)
		ratings.DELETE("/films/:id", c.RatingHandler.DeleteFilmRating)

		ratings.GET("/authors", c.RatingHandler.ListAuthorRatings)
		ratings.POST("/authors", c.RatingHandler.RateAuthor)
		ratings.DELETE("/authors/:id", c.RatingHandler.DeleteAuthorRating)
	}
}

func setupFavoriteRoutes(api *gin.RouterGroup, c *container.Container) {
	favorites := api.Group("/favorites", middleware.AuthMiddleware(c.JWTManager))
	{
		favorites.GET("", c.FavoriteHandler.List)
		favorites.POST("", c.FavoriteHandler.Add)
		favorites.DELETE("/:id", c.FavoriteHandler.Remove)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			checks["database"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(checkCtx); err != nil {
			checks["redis"] = "unavailable"
			status = http.StatusServiceUnavailable
		}

		if status == http.StatusOK {
			response.Success(ctx, status, "Service healthy", checks)
		} else {
			ctx.JSON(status, response.Response{Success: false, Message: "Service degraded", Data: checks})
		}
	}
}
