package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinema-backend/internal/domains/rating/model"
	"cinema-backend/internal/domains/rating/service"
	spectatormodel "cinema-backend/internal/domains/spectator/model"
	"cinema-backend/internal/shared/middleware"
	"cinema-backend/internal/shared/response"
)

// Handler xử lý HTTP requests cho ratings
type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// RateFilm godoc
// POST /api/ratings/films
func (h *Handler) RateFilm(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req model.CreateFilmRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	rating, err := h.service.RateFilm(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Film rated successfully", rating)
}

// ListFilmRatings godoc
// GET /api/ratings/films — chỉ ratings của spectator hiện tại
func (h *Handler) ListFilmRatings(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	ratings, err := h.service.ListFilmRatings(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Film ratings retrieved successfully", ratings)
}

// DeleteFilmRating godoc
// DELETE /api/ratings/films/:id
func (h *Handler) DeleteFilmRating(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	ratingID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteFilmRating(c.Request.Context(), userID, ratingID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Film rating deleted successfully", nil)
}

// RateAuthor godoc
// POST /api/ratings/authors
func (h *Handler) RateAuthor(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req model.CreateAuthorRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	rating, err := h.service.RateAuthor(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Author rated successfully", rating)
}

// ListAuthorRatings godoc
// GET /api/ratings/authors
func (h *Handler) ListAuthorRatings(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	ratings, err := h.service.ListAuthorRatings(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author ratings retrieved successfully", ratings)
}

// DeleteAuthorRating godoc
// DELETE /api/ratings/authors/:id
func (h *Handler) DeleteAuthorRating(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	ratingID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAuthorRating(c.Request.Context(), userID, ratingID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author rating deleted successfully", nil)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAlreadyRated):
		response.Error(c, http.StatusConflict, "Already rated", err)
	case errors.Is(err, model.ErrRatingNotFound):
		response.Error(c, http.StatusNotFound, "Rating not found", err)
	case errors.Is(err, model.ErrTargetNotFound):
		response.Error(c, http.StatusNotFound, "Rated film or author not found", err)
	case errors.Is(err, spectatormodel.ErrSpectatorNotFound):
		response.Error(c, http.StatusNotFound, "Spectator profile not found", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid user identity", nil)
		c.Abort()
		return uuid.Nil, false
	}

	return userID, true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid rating ID", err)
		return uuid.Nil, false
	}

	return id, true
}
