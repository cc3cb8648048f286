package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"cinema-backend/internal/domains/spectator/model"
	"cinema-backend/internal/domains/spectator/repository"
	"cinema-backend/internal/infrastructure/storage"
)

// Service định nghĩa business logic cho spectator profile
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.ProfileResponse, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte) (*model.ProfileResponse, error)
}

type spectatorService struct {
	repo      repository.Repository
	media     *storage.MediaStorage
	processor *storage.AvatarProcessor
}

// NewSpectatorService tạo spectator service
func NewSpectatorService(repo repository.Repository, media *storage.MediaStorage, processor *storage.AvatarProcessor) Service {
	return &spectatorService{
		repo:      repo,
		media:     media,
		processor: processor,
	}
}

func (s *spectatorService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileResponse, error) {
	spec, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.toResponse(spec), nil
}

func (s *spectatorService) UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	spec, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		if err := s.repo.UpdateBio(ctx, spec.ID, *req.Bio); err != nil {
			return nil, err
		}
		spec.Bio = *req.Bio
	}

	return s.toResponse(spec), nil
}

func (s *spectatorService) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte) (*model.ProfileResponse, error) {
	spec, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// STEP 1: Validate + normalize ảnh
	processed, contentType, err := s.processor.Process(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidAvatar, err)
	}

	// STEP 2: Upload lên MinIO
	key := fmt.Sprintf("avatars/%s.jpg", spec.ID)
	if err := s.media.Upload(ctx, key, processed, contentType); err != nil {
		return nil, err
	}

	// STEP 3: Lưu storage key
	if err := s.repo.UpdateAvatarKey(ctx, spec.ID, key); err != nil {
		return nil, err
	}
	spec.AvatarKey = &key

	log.Info().
		Str("spectator_id", spec.ID.String()).
		Str("key", key).
		Msg("Avatar uploaded")

	return s.toResponse(spec), nil
}

func (s *spectatorService) toResponse(spec *model.Spectator) *model.ProfileResponse {
	resp := &model.ProfileResponse{
		ID:   spec.ID,
		User: spec.User,
		Bio:  spec.Bio,
	}

	if spec.AvatarKey != nil {
		url := s.media.PublicURL(*spec.AvatarKey)
		resp.AvatarURL = &url
	}

	return resp
}
