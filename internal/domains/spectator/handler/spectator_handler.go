package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinema-backend/internal/domains/spectator/model"
	"cinema-backend/internal/domains/spectator/service"
	"cinema-backend/internal/shared/middleware"
	"cinema-backend/internal/shared/response"
)

const maxAvatarSize = 5 << 20 // 5MB

// Handler xử lý HTTP requests cho spectator profile
type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// GetProfile godoc
// GET /api/spectators/me
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile godoc
// PATCH /api/spectators/me
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// UploadAvatar godoc
// POST /api/spectators/me/avatar (multipart, field "avatar")
func (h *Handler) UploadAvatar(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Avatar file required", err)
		return
	}
	if fileHeader.Size > maxAvatarSize {
		response.Error(c, http.StatusBadRequest, "Avatar file too large (max 5MB)", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read avatar file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read avatar file", err)
		return
	}

	profile, err := h.service.UploadAvatar(c.Request.Context(), userID, data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Avatar uploaded successfully", profile)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrSpectatorNotFound):
		response.Error(c, http.StatusNotFound, "Spectator profile not found", err)
	case errors.Is(err, model.ErrInvalidAvatar):
		response.Error(c, http.StatusBadRequest, "Invalid avatar image", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func getUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString(middleware.ContextUserIDKey)
	userID, err := uuid.Parse(raw)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid user identity", nil)
		c.Abort()
		return uuid.Nil, false
	}

	return userID, true
}
