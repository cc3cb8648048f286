package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/film/model"
	"cinema-backend/internal/domains/film/repository"
)

const dateLayout = "2006-01-02"

// Service định nghĩa business logic cho film catalog
type Service interface {
	Create(ctx context.Context, req model.CreateFilmRequest) (*model.Film, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Film, error)
	List(ctx context.Context, status, source string) ([]*model.Film, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateFilmRequest) (*model.Film, error)
	Archive(ctx context.Context, id uuid.UUID) (*model.Film, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type filmService struct {
	repo repository.Repository
}

// NewFilmService tạo film service
func NewFilmService(repo repository.Repository) Service {
	return &filmService{repo: repo}
}

func (s *filmService) Create(ctx context.Context, req model.CreateFilmRequest) (*model.Film, error) {
	f := &model.Film{
		Title:       req.Title,
		Description: req.Description,
		Evaluation:  req.Evaluation,
		Status:      req.Status,
		Source:      model.SourceAdmin,
	}
	if f.Evaluation == 0 {
		f.Evaluation = 3
	}
	if f.Status == "" {
		f.Status = model.StatusDraft
	}
	if req.ReleaseDate != "" {
		d, err := time.Parse(dateLayout, req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidDate, req.ReleaseDate)
		}
		f.ReleaseDate = &d
	}

	if err := s.repo.Create(ctx, f, req.AuthorIDs); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, f.ID)
}

func (s *filmService) GetByID(ctx context.Context, id uuid.UUID) (*model.Film, error) {
	return s.repo.FindByID(ctx, id)
}

// List filter theo status/source; giá trị không hợp lệ bị bỏ qua
func (s *filmService) List(ctx context.Context, status, source string) ([]*model.Film, error) {
	filter := repository.ListFilter{}
	if model.ValidStatus(status) {
		filter.Status = status
	}
	if model.ValidSource(source) {
		filter.Source = source
	}

	return s.repo.List(ctx, filter)
}

func (s *filmService) Update(ctx context.Context, id uuid.UUID, req model.UpdateFilmRequest) (*model.Film, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		f.Title = *req.Title
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Evaluation != nil {
		f.Evaluation = *req.Evaluation
	}
	if req.Status != nil {
		f.Status = *req.Status
	}
	if req.ReleaseDate != nil {
		if *req.ReleaseDate == "" {
			f.ReleaseDate = nil
		} else {
			d, err := time.Parse(dateLayout, *req.ReleaseDate)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", model.ErrInvalidDate, *req.ReleaseDate)
			}
			f.ReleaseDate = &d
		}
	}

	if err := s.repo.Update(ctx, f, req.AuthorIDs); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

// Archive chuyển film sang trạng thái ARCHIVED
func (s *filmService) Archive(ctx context.Context, id uuid.UUID) (*model.Film, error) {
	if err := s.repo.UpdateStatus(ctx, id, model.StatusArchived); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *filmService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
