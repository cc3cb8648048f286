package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	spectatormodel "cinema-backend/internal/domains/spectator/model"
	spectatorrepo "cinema-backend/internal/domains/spectator/repository"
	"cinema-backend/internal/domains/user"
	"cinema-backend/pkg/cache"
	"cinema-backend/pkg/jwt"
)

const (
	bcryptCost         = 12
	blacklistKeyPrefix = "blacklist:"
)

// Service định nghĩa business logic cho authentication
type Service interface {
	Register(ctx context.Context, req user.RegisterRequest) (*user.View, error)
	Login(ctx context.Context, req user.LoginRequest) (*user.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*user.TokenPairResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo      user.Repository
	spectatorRepo spectatorrepo.Repository
	jwtManager    *jwt.Manager
	cache         cache.Cache
}

// NewAuthService tạo auth service
func NewAuthService(
	userRepo user.Repository,
	spectatorRepo spectatorrepo.Repository,
	jwtManager *jwt.Manager,
	cache cache.Cache,
) Service {
	return &authService{
		userRepo:      userRepo,
		spectatorRepo: spectatorRepo,
		jwtManager:    jwtManager,
		cache:         cache,
	}
}

// Register tạo User + Spectator profile
func (s *authService) Register(ctx context.Context, req user.RegisterRequest) (*user.View, error) {
	// STEP 1: Check username đã tồn tại chưa
	_, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, user.ErrUsernameExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	// STEP 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// STEP 3: Tạo user
	u := &user.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	// STEP 4: Tạo spectator profile gắn với user
	spec := &spectatormodel.Spectator{UserID: u.ID}
	if err := s.spectatorRepo.Create(ctx, spec); err != nil {
		return nil, fmt.Errorf("failed to create spectator profile: %w", err)
	}

	log.Info().
		Str("user_id", u.ID.String()).
		Str("username", u.Username).
		Msg("✅ User registered")

	view := u.View()
	return &view, nil
}

// Login xác thực credentials và trả về token pair
func (s *authService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenPairResponse, error) {
	u, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueTokenPair(u.ID.String(), u.Username)
}

// Refresh xoay vòng refresh token: token cũ bị blacklist, cấp pair mới
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*user.TokenPairResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	// Check blacklist trước khi chấp nhận token
	revoked, err := s.cache.Exists(ctx, blacklistKeyPrefix+claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if revoked {
		return nil, user.ErrTokenRevoked
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidToken
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	// Blacklist token cũ với TTL = thời gian còn lại của token
	if err := s.blacklist(ctx, claims); err != nil {
		return nil, err
	}

	return s.issueTokenPair(u.ID.String(), u.Username)
}

// Logout thu hồi refresh token
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return user.ErrInvalidToken
	}

	revoked, err := s.cache.Exists(ctx, blacklistKeyPrefix+claims.ID)
	if err != nil {
		return fmt.Errorf("failed to check token blacklist: %w", err)
	}
	if revoked {
		return user.ErrTokenRevoked
	}

	if err := s.blacklist(ctx, claims); err != nil {
		return err
	}

	log.Info().
		Str("user_id", claims.UserID).
		Msg("User logged out")

	return nil
}

func (s *authService) blacklist(ctx context.Context, claims *jwt.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // Token đã hết hạn, không cần blacklist
	}

	if err := s.cache.Set(ctx, blacklistKeyPrefix+claims.ID, "revoked", ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

func (s *authService) issueTokenPair(userID, username string) (*user.TokenPairResponse, error) {
	access, err := s.jwtManager.GenerateAccessToken(userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &user.TokenPairResponse{
		Access:  access,
		Refresh: refresh,
	}, nil
}
