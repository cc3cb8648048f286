package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"cinema-backend/internal/config"
	authorhandler "cinema-backend/internal/domains/author/handler"
	authorrepo "cinema-backend/internal/domains/author/repository"
	authorservice "cinema-backend/internal/domains/author/service"
	favoritehandler "cinema-backend/internal/domains/favorite/handler"
	favoriterepo "cinema-backend/internal/domains/favorite/repository"
	favoriteservice "cinema-backend/internal/domains/favorite/service"
	filmhandler "cinema-backend/internal/domains/film/handler"
	filmrepo "cinema-backend/internal/domains/film/repository"
	filmservice "cinema-backend/internal/domains/film/service"
	ratinghandler "cinema-backend/internal/domains/rating/handler"
	ratingrepo "cinema-backend/internal/domains/rating/repository"
	ratingservice "cinema-backend/internal/domains/rating/service"
	spectatorhandler "cinema-backend/internal/domains/spectator/handler"
	spectatorrepo "cinema-backend/internal/domains/spectator/repository"
	spectatorservice "cinema-backend/internal/domains/spectator/service"
	"cinema-backend/internal/domains/user"
	userhandler "cinema-backend/internal/domains/user/handler"
	userrepo "cinema-backend/internal/domains/user/repository"
	userservice "cinema-backend/internal/domains/user/service"
	rediscache "cinema-backend/internal/infrastructure/cache"
	"cinema-backend/internal/infrastructure/database"
	"cinema-backend/internal/infrastructure/storage"
	"cinema-backend/pkg/jwt"
)

// Container giữ toàn bộ dependencies của application
// Build theo thứ tự: config → infra → repos → services → handlers
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *database.PostgresDB
	Cache      *rediscache.RedisCache
	Media      *storage.MediaStorage
	JWTManager *jwt.Manager

	// Repositories
	UserRepo      user.Repository
	SpectatorRepo spectatorrepo.Repository
	AuthorRepo    authorrepo.Repository
	FilmRepo      filmrepo.Repository
	RatingRepo    ratingrepo.Repository
	FavoriteRepo  favoriterepo.Repository

	// Services
	AuthService      userservice.Service
	SpectatorService spectatorservice.Service
	AuthorService    authorservice.Service
	FilmService      filmservice.Service
	RatingService    ratingservice.Service
	FavoriteService  favoriteservice.Service

	// Handlers
	AuthHandler      *userhandler.Handler
	SpectatorHandler *spectatorhandler.Handler
	AuthorHandler    *authorhandler.Handler
	FilmHandler      *filmhandler.Handler
	RatingHandler    *ratinghandler.Handler
	FavoriteHandler  *favoritehandler.Handler
}

// New builds container với tất cả dependencies
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// STEP 1: Infrastructure
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}
	c.DB = db

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	redisCache, err := rediscache.NewRedisCache(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}
	c.Cache = redisCache

	media, err := storage.NewMediaStorage(&cfg.Media)
	if err != nil {
		return nil, fmt.Errorf("failed to init media storage: %w", err)
	}
	c.Media = media

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// STEP 2: Repositories
	c.UserRepo = userrepo.NewPostgresRepository(db.Pool)
	c.SpectatorRepo = spectatorrepo.NewPostgresRepository(db.Pool)
	c.AuthorRepo = authorrepo.NewPostgresRepository(db.Pool)
	c.FilmRepo = filmrepo.NewPostgresRepository(db.Pool)
	c.RatingRepo = ratingrepo.NewPostgresRepository(db.Pool)
	c.FavoriteRepo = favoriterepo.NewPostgresRepository(db.Pool)

	// STEP 3: Services
	c.AuthService = userservice.NewAuthService(c.UserRepo, c.SpectatorRepo, c.JWTManager, c.Cache)
	c.SpectatorService = spectatorservice.NewSpectatorService(c.SpectatorRepo, c.Media, storage.NewAvatarProcessor())
	c.AuthorService = authorservice.NewAuthorService(c.AuthorRepo, c.UserRepo)
	c.FilmService = filmservice.NewFilmService(c.FilmRepo)
	c.RatingService = ratingservice.NewRatingService(c.RatingRepo, c.SpectatorRepo)
	c.FavoriteService = favoriteservice.NewFavoriteService(c.FavoriteRepo, c.SpectatorRepo)

	// STEP 4: Handlers
	c.AuthHandler = userhandler.NewHandler(c.AuthService)
	c.SpectatorHandler = spectatorhandler.NewHandler(c.SpectatorService)
	c.AuthorHandler = authorhandler.NewHandler(c.AuthorService)
	c.FilmHandler = filmhandler.NewHandler(c.FilmService)
	c.RatingHandler = ratinghandler.NewHandler(c.RatingService)
	c.FavoriteHandler = favoritehandler.NewHandler(c.FavoriteService)

	log.Info().Msg("🚀 Container initialized")

	return c, nil
}

// Cleanup đóng các connections khi shutdown
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis connection")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("👋 Container cleaned up")
}
