package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinema-backend/internal/domains/user"
	"cinema-backend/internal/domains/user/service"
	"cinema-backend/internal/shared/response"
)

// Handler xử lý HTTP requests cho authentication
type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	view, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", view)
}

// Login godoc
// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req user.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	pair, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", pair)
}

// Refresh godoc
// POST /api/auth/token/refresh
func (h *Handler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed successfully", pair)
}

// Logout godoc
// POST /api/auth/logout
// Thành công trả về 205 Reset Content, token lỗi trả về 400
func (h *Handler) Logout(c *gin.Context) {
	var req user.LogoutRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.service.Logout(c.Request.Context(), req.Refresh); err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidToken), errors.Is(err, user.ErrTokenRevoked):
			response.Error(c, http.StatusBadRequest, "Invalid refresh token", err)
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusResetContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUsernameExists):
		response.Error(c, http.StatusConflict, "Username already exists", err)
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid username or password", err)
	case errors.Is(err, user.ErrUserInactive):
		response.Error(c, http.StatusForbidden, "User account is inactive", err)
	case errors.Is(err, user.ErrInvalidToken), errors.Is(err, user.ErrTokenRevoked):
		response.Error(c, http.StatusUnauthorized, "Invalid or revoked token", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func bindAndValidate(c *gin.Context, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return false
	}

	return true
}
