package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-backend/internal/domains/user"
)

type fakeAuthService struct {
	registered map[string]bool
	logoutErr  error
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{registered: make(map[string]bool)}
}

func (s *fakeAuthService) Register(ctx context.Context, req user.RegisterRequest) (*user.View, error) {
	if s.registered[req.Username] {
		return nil, user.ErrUsernameExists
	}
	s.registered[req.Username] = true
	return &user.View{Username: req.Username, Email: req.Email}, nil
}

func (s *fakeAuthService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenPairResponse, error) {
	if !s.registered[req.Username] {
		return nil, user.ErrInvalidCredentials
	}
	return &user.TokenPairResponse{Access: "access-token", Refresh: "refresh-token"}, nil
}

func (s *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (*user.TokenPairResponse, error) {
	if refreshToken != "refresh-token" {
		return nil, user.ErrInvalidToken
	}
	return &user.TokenPairResponse{Access: "new-access", Refresh: "new-refresh"}, nil
}

func (s *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.logoutErr
}

func setupAuthRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)
	auth := router.Group("/api/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/token/refresh", h.Refresh)
	auth.POST("/logout", h.Logout)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginFlow(t *testing.T) {
	svc := newFakeAuthService()
	router := setupAuthRouter(svc)

	w := doJSON(router, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"super-secret-pw"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Trùng username → 409
	w = doJSON(router, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"other@example.com","password":"super-secret-pw"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"super-secret-pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access-token")

	w = doJSON(router, http.MethodPost, "/api/auth/login",
		`{"username":"mallory","password":"whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := setupAuthRouter(newFakeAuthService())

	// Password quá ngắn
	w := doJSON(router, http.MethodPost, "/api/auth/register",
		`{"username":"bob","email":"bob@example.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Email không hợp lệ
	w = doJSON(router, http.MethodPost, "/api/auth/register",
		`{"username":"bob","email":"not-an-email","password":"super-secret-pw"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutStatusCodes(t *testing.T) {
	svc := newFakeAuthService()
	router := setupAuthRouter(svc)

	// Thành công → 205 Reset Content
	w := doJSON(router, http.MethodPost, "/api/auth/logout", `{"refresh":"refresh-token"}`)
	assert.Equal(t, http.StatusResetContent, w.Code)

	// Token lỗi → 400
	svc.logoutErr = user.ErrInvalidToken
	w = doJSON(router, http.MethodPost, "/api/auth/logout", `{"refresh":"garbage"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Token đã thu hồi → 400
	svc.logoutErr = user.ErrTokenRevoked
	w = doJSON(router, http.MethodPost, "/api/auth/logout", `{"refresh":"refresh-token"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Thiếu refresh field → 400
	svc.logoutErr = nil
	w = doJSON(router, http.MethodPost, "/api/auth/logout", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshRotation(t *testing.T) {
	svc := newFakeAuthService()
	router := setupAuthRouter(svc)

	w := doJSON(router, http.MethodPost, "/api/auth/token/refresh", `{"refresh":"refresh-token"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "new-access")

	w = doJSON(router, http.MethodPost, "/api/auth/token/refresh", `{"refresh":"stale"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
