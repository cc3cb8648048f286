package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"cinema-backend/internal/domains/author/model"
	"cinema-backend/internal/domains/author/repository"
	"cinema-backend/internal/domains/user"
)

const dateLayout = "2006-01-02"

// Service định nghĩa business logic cho author
type Service interface {
	Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	List(ctx context.Context, source string) ([]*model.Author, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type authorService struct {
	repo     repository.Repository
	userRepo user.Repository
}

// NewAuthorService tạo author service
func NewAuthorService(repo repository.Repository, userRepo user.Repository) Service {
	return &authorService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// UsernameFromName derive username từ display name, space → "_"
func UsernameFromName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// Create tạo backing user rồi gắn author profile (source ADMIN)
func (s *authorService) Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error) {
	username := UsernameFromName(req.FirstName + " " + req.LastName)

	// STEP 1: Get-or-create backing user (không có password đăng nhập)
	u, created, err := s.userRepo.GetOrCreate(ctx, &user.User{
		Username:  username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	})
	if err != nil {
		return nil, err
	}

	// STEP 2: Tạo author profile
	a := &model.Author{
		UserID: u.ID,
		Source: model.SourceAdmin,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidDate, req.DateOfBirth)
		}
		a.DateOfBirth = &dob
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	a.User = u.View()

	log.Info().
		Str("author_id", a.ID.String()).
		Str("username", username).
		Bool("user_created", created).
		Msg("✅ Author created")

	return a, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return s.repo.FindByID(ctx, id)
}

// List filter theo source; giá trị không hợp lệ bị bỏ qua
func (s *authorService) List(ctx context.Context, source string) ([]*model.Author, error) {
	if !model.ValidSource(source) {
		source = ""
	}

	return s.repo.List(ctx, source)
}

// Update cập nhật author, write-through name/email sang backing user
func (s *authorService) Update(ctx context.Context, id uuid.UUID, req model.UpdateAuthorRequest) (*model.Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Write-through sang users nếu có thay đổi identity fields
	if req.FirstName != nil || req.LastName != nil || req.Email != nil {
		u, err := s.userRepo.FindByID(ctx, a.UserID)
		if err != nil {
			return nil, err
		}
		if req.FirstName != nil {
			u.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			u.LastName = *req.LastName
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if err := s.userRepo.Update(ctx, u); err != nil {
			return nil, err
		}
		a.User = u.View()
	}

	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			a.DateOfBirth = nil
		} else {
			dob, err := time.Parse(dateLayout, *req.DateOfBirth)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", model.ErrInvalidDate, *req.DateOfBirth)
			}
			a.DateOfBirth = &dob
		}
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// Delete xóa author, bị chặn khi author còn phim
func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.repo.CountFilms(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return model.ErrAuthorHasFilms
	}

	return s.repo.Delete(ctx, id)
}
