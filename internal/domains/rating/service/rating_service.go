package service

import (
	"context"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/rating/model"
	"cinema-backend/internal/domains/rating/repository"
	spectatorrepo "cinema-backend/internal/domains/spectator/repository"
)

// Service định nghĩa business logic cho ratings
// Spectator luôn resolve từ authenticated user, không bao giờ từ request body
type Service interface {
	RateFilm(ctx context.Context, userID uuid.UUID, req model.CreateFilmRatingRequest) (*model.FilmRating, error)
	ListFilmRatings(ctx context.Context, userID uuid.UUID) ([]*model.FilmRating, error)
	DeleteFilmRating(ctx context.Context, userID, ratingID uuid.UUID) error

	RateAuthor(ctx context.Context, userID uuid.UUID, req model.CreateAuthorRatingRequest) (*model.AuthorRating, error)
	ListAuthorRatings(ctx context.Context, userID uuid.UUID) ([]*model.AuthorRating, error)
	DeleteAuthorRating(ctx context.Context, userID, ratingID uuid.UUID) error
}

type ratingService struct {
	repo       repository.Repository
	spectators spectatorrepo.Repository
}

// NewRatingService tạo rating service
func NewRatingService(repo repository.Repository, spectators spectatorrepo.Repository) Service {
	return &ratingService{
		repo:       repo,
		spectators: spectators,
	}
}

func (s *ratingService) RateFilm(ctx context.Context, userID uuid.UUID, req model.CreateFilmRatingRequest) (*model.FilmRating, error) {
	spec, err := s.spectators.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fr := &model.FilmRating{
		FilmID:      req.FilmID,
		SpectatorID: spec.ID,
		Note:        req.Note,
	}
	if err := s.repo.CreateFilmRating(ctx, fr); err != nil {
		return nil, err
	}

	return fr, nil
}

func (s *ratingService) ListFilmRatings(ctx context.Context, userID uuid.UUID) ([]*model.FilmRating, error) {
	spec, err := s.spectators.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListFilmRatings(ctx, spec.ID)
}

func (s *ratingService) DeleteFilmRating(ctx context.Context, userID, ratingID uuid.UUID) error {
	spec, err := s.spectators.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return s.repo.DeleteFilmRating(ctx, ratingID, spec.ID)
}

func (s *ratingService) RateAuthor(ctx context.Context, userID uuid.UUID, req model.CreateAuthorRatingRequest) (*model.AuthorRating, error) {
	spec, err := s.spectators.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ar := &model.AuthorRating{
		AuthorID:    req.AuthorID,
		SpectatorID: spec.ID,
		Note:        req.Note,
	}
	if err := s.repo.CreateAuthorRating(ctx, ar); err != nil {
		return nil, err
	}

	return ar, nil
}

func (s *ratingService) ListAuthorRatings(ctx context.Context, userID uuid.UUID) ([]*model.AuthorRating, error) {
	spec, err := s.spectators.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListAuthorRatings(ctx, spec.ID)
}

func (s *ratingService) DeleteAuthorRating(ctx context.Context, userID, ratingID uuid.UUID) error {
	spec, err := s.spectators.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return s.repo.DeleteAuthorRating(ctx, ratingID, spec.ID)
}
