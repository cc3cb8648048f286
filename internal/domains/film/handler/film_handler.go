package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cinema-backend/internal/domains/film/model"
	"cinema-backend/internal/domains/film/service"
	"cinema-backend/internal/shared/response"
)

// Handler xử lý HTTP requests cho film catalog
type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// GET /api/films?status=DRAFT|PUBLISHED|ARCHIVED&source=ADMIN|TMDB
func (h *Handler) List(c *gin.Context) {
	films, err := h.service.List(c.Request.Context(), c.Query("status"), c.Query("source"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Films retrieved successfully", films)
}

// GetByID godoc
// GET /api/films/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	film, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Film retrieved successfully", film)
}

// Create godoc
// POST /api/films
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateFilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	film, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Film created successfully", film)
}

// Update godoc
// PATCH /api/films/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateFilmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	film, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Film updated successfully", film)
}

// Archive godoc
// POST /api/films/:id/archive
func (h *Handler) Archive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	film, err := h.service.Archive(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Film archived successfully", film)
}

// Delete godoc
// DELETE /api/films/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Film deleted successfully", nil)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrFilmNotFound):
		response.Error(c, http.StatusNotFound, "Film not found", err)
	case errors.Is(err, model.ErrFilmExists):
		response.Error(c, http.StatusConflict, "Film with this title already exists", err)
	case errors.Is(err, model.ErrAuthorNotFound):
		response.Error(c, http.StatusBadRequest, "Referenced author not found", err)
	case errors.Is(err, model.ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "Invalid date format", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid film ID", err)
		return uuid.Nil, false
	}

	return id, true
}
