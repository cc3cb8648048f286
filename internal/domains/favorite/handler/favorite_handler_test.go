package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-backend/internal/domains/favorite/model"
	"cinema-backend/internal/shared/middleware"
	"cinema-backend/pkg/jwt"
)

type fakeFavoriteService struct {
	pairs map[string]*model.Favorite
}

func newFakeFavoriteService() *fakeFavoriteService {
	return &fakeFavoriteService{pairs: make(map[string]*model.Favorite)}
}

func (s *fakeFavoriteService) Add(ctx context.Context, userID uuid.UUID, req model.CreateFavoriteRequest) (*model.Favorite, error) {
	key := userID.String() + "/" + req.FilmID.String()
	if _, ok := s.pairs[key]; ok {
		return nil, model.ErrAlreadyFavorited
	}
	f := &model.Favorite{ID: uuid.New(), SpectatorID: userID, FilmID: req.FilmID}
	s.pairs[key] = f
	return f, nil
}

func (s *fakeFavoriteService) List(ctx context.Context, userID uuid.UUID) ([]*model.Favorite, error) {
	var out []*model.Favorite
	for key, f := range s.pairs {
		if strings.HasPrefix(key, userID.String()+"/") {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *fakeFavoriteService) Remove(ctx context.Context, userID, favoriteID uuid.UUID) error {
	for key, f := range s.pairs {
		if f.ID == favoriteID && strings.HasPrefix(key, userID.String()+"/") {
			delete(s.pairs, key)
			return nil
		}
	}
	return model.ErrFavoriteNotFound
}

func setupFavoriteRouter(svc *fakeFavoriteService, manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(svc)
	favorites := router.Group("/api/favorites", middleware.AuthMiddleware(manager))
	favorites.GET("", h.List)
	favorites.POST("", h.Add)
	favorites.DELETE("/:id", h.Remove)
	return router
}

func TestFavoritesRequireAuth(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	router := setupFavoriteRouter(newFakeFavoriteService(), manager)

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Refresh token không thay được access token
	refresh, err := manager.GenerateRefreshToken(uuid.New().String(), "alice")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFavoriteAddListRemoveFlow(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	router := setupFavoriteRouter(newFakeFavoriteService(), manager)

	token, err := manager.GenerateAccessToken(uuid.New().String(), "alice")
	require.NoError(t, err)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	filmID := uuid.New().String()

	w := do(http.MethodPost, "/api/favorites", `{"film_id":"`+filmID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Cùng cặp (spectator, film) → 409
	w = do(http.MethodPost, "/api/favorites", `{"film_id":"`+filmID+`"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(http.MethodGet, "/api/favorites", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), filmID)

	// Thiếu film_id → 400
	w = do(http.MethodPost, "/api/favorites", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
