package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinema-backend/internal/domains/favorite/model"
	"cinema-backend/internal/domains/favorite/service"
	spectatormodel "cinema-backend/internal/domains/spectator/model"
	"cinema-backend/internal/shared/middleware"
	"cinema-backend/internal/shared/response"
)

// Handler xử lý HTTP requests cho favorites
type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Add godoc
// POST /api/favorites
func (h *Handler) Add(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req model.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	favorite, err := h.service.Add(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Film added to favorites", favorite)
}

// List godoc
// GET /api/favorites — chỉ favorites của spectator hiện tại
func (h *Handler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Favorites retrieved successfully", favorites)
}

// Remove godoc
// DELETE /api/favorites/:id
func (h *Handler) Remove(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	favoriteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid favorite ID", err)
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, favoriteID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Favorite removed successfully", nil)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAlreadyFavorited):
		response.Error(c, http.StatusConflict, "Film already in favorites", err)
	case errors.Is(err, model.ErrFavoriteNotFound):
		response.Error(c, http.StatusNotFound, "Favorite not found", err)
	case errors.Is(err, model.ErrFilmNotFound):
		response.Error(c, http.StatusNotFound, "Favorited film not found", err)
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
