package service

import (
	"context"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/favorite/model"
	"cinema-backend/internal/domains/favorite/repository"
	spectatorrepo "cinema-backend/internal/domains/spectator/repository"
)

// Service định nghĩa business logic cho favorites
// Spectator luôn resolve từ authenticated user
type Service interface {
	Add(ctx context.Context, userID uuid.UUID, req model.CreateFavoriteRequest) (*model.Favorite, error)
	List(ctx context.Context, userID uuid.UUID) ([]*model.Favorite, error)
	Remove(ctx context.Context, userID, favoriteID uuid.UUID) error
}

type favoriteService struct {
	repo       repository.Repository
	spectators spectatorrepo.Repository
}

// NewFavoriteService tạo favorite service
func NewFavoriteService(repo repository.Repository, spectators spectatorrepo.Repository) Service {
	return &favoriteService{
		repo:       repo,
		spectators: spectators,
	}
}

func (s *favoriteService) Add(ctx context.Context, userID uuid.UUID, req model.CreateFavoriteRequest) (*model.Favorite, error) {
	spec, err := s.spectators.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := &model.Favorite{
		SpectatorID: spec.ID,
		FilmID:      req.FilmID,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]*model.Favorite, error) {
	spec, err := s.spectators.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListBySpectator(ctx, spec.ID)
}

func (s *favoriteService) Remove(ctx context.Context, userID, favoriteID uuid.UUID) error {
	spec, err := s.spectators.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, favoriteID, spec.ID)
}
