package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinema-backend/internal/domains/author/model"
	"cinema-backend/internal/domains/author/service"
	"cinema-backend/internal/shared/response"
)

// Handler xử lý HTTP requests cho author
type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// GET /api/authors?source=ADMIN|TMDB
func (h *Handler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context(), c.Query("source"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Authors retrieved successfully", authors)
}

// GetByID godoc
// GET /api/authors/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author retrieved successfully", author)
}

// Create godoc
// POST /api/authors
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	author, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Author created successfully", author)
}

// Update godoc
// PATCH /api/authors/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	author, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author updated successfully", author)
}

// Delete godoc
// DELETE /api/authors/:id
// Bị chặn với 400 khi author còn phim
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author deleted successfully", nil)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		response.Error(c, http.StatusNotFound, "Author not found", err)
	case errors.Is(err, model.ErrAuthorHasFilms):
		response.Error(c, http.StatusBadRequest, "Author still has films attached", err)
	case errors.Is(err, model.ErrAuthorExists):
		response.Error(c, http.StatusConflict, "Author already exists", err)
	case errors.Is(err, model.ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "Invalid date format", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid author ID", err)
		return uuid.Nil, false
	}

	return id, true
}
