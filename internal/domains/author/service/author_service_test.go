package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-backend/internal/domains/author/model"
	"cinema-backend/internal/domains/user"
)

// ==================== Fakes ====================

type fakeAuthorRepo struct {
	byID       map[uuid.UUID]*model.Author
	filmCounts map[uuid.UUID]int64
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{
		byID:       make(map[uuid.UUID]*model.Author),
		filmCounts: make(map[uuid.UUID]int64),
	}
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *model.Author) error {
	for _, existing := range r.byID {
		if existing.UserID == a.UserID {
			return model.ErrAuthorExists
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

func (r *fakeAuthorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Author, error) {
	for _, a := range r.byID {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, model.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) List(ctx context.Context, source string) ([]*model.Author, error) {
	var authors []*model.Author
	for _, a := range r.byID {
		if source == "" || a.Source == source {
			authors = append(authors, a)
		}
	}
	return authors, nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, a *model.Author) error {
	if _, ok := r.byID[a.ID]; !ok {
		return model.ErrAuthorNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return model.ErrAuthorNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeAuthorRepo) CountFilms(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.filmCounts[id], nil
}

func (r *fakeAuthorRepo) GetOrCreateForUser(ctx context.Context, userID uuid.UUID, source string) (*model.Author, bool, error) {
	if a, err := r.FindByUserID(ctx, userID); err == nil {
		return a, false, nil
	}
	a := &model.Author{UserID: userID, Source: source}
	if err := r.Create(ctx, a); err != nil {
		return nil, false, err
	}
	return a, true, nil
}

type fakeUserRepo struct {
	byUsername map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return user.ErrUsernameExists
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetOrCreate(ctx context.Context, u *user.User) (*user.User, bool, error) {
	if existing, ok := r.byUsername[u.Username]; ok {
		return existing, false, nil
	}
	if err := r.Create(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	return nil
}

// ==================== Tests ====================

func TestUsernameFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Christopher Nolan", "Christopher_Nolan"},
		{"  Greta Gerwig  ", "Greta_Gerwig"},
		{"Madonna", "Madonna"},
		{"Jean Pierre Jeunet", "Jean_Pierre_Jeunet"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UsernameFromName(tt.name))
	}
}

func TestCreateAuthorDerivesUsername(t *testing.T) {
	repo := newFakeAuthorRepo()
	users := newFakeUserRepo()
	svc := NewAuthorService(repo, users)

	a, err := svc.Create(context.Background(), model.CreateAuthorRequest{
		FirstName:   "Christopher",
		LastName:    "Nolan",
		Email:       "nolan@example.com",
		DateOfBirth: "1970-07-30",
	})
	require.NoError(t, err)

	assert.Equal(t, model.SourceAdmin, a.Source)
	assert.Equal(t, "Christopher_Nolan", a.User.Username)
	require.NotNil(t, a.DateOfBirth)
	assert.Equal(t, "1970-07-30", a.DateOfBirth.Format("2006-01-02"))
}

func TestCreateAuthorRejectsBadDate(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo(), newFakeUserRepo())

	_, err := svc.Create(context.Background(), model.CreateAuthorRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		DateOfBirth: "30/07/1970",
	})
	assert.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestDeleteAuthorGuard(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo, newFakeUserRepo())

	a := &model.Author{UserID: uuid.New(), Source: model.SourceAdmin}
	require.NoError(t, repo.Create(context.Background(), a))

	// Author còn phim → delete bị chặn
	repo.filmCounts[a.ID] = 2
	err := svc.Delete(context.Background(), a.ID)
	assert.ErrorIs(t, err, model.ErrAuthorHasFilms)
	_, err = repo.FindByID(context.Background(), a.ID)
	assert.NoError(t, err)

	// Hết phim → delete thành công
	repo.filmCounts[a.ID] = 0
	require.NoError(t, svc.Delete(context.Background(), a.ID))
	_, err = repo.FindByID(context.Background(), a.ID)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestListNormalizesSourceFilter(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo, newFakeUserRepo())

	admin := &model.Author{UserID: uuid.New(), Source: model.SourceAdmin}
	imported := &model.Author{UserID: uuid.New(), Source: model.SourceTMDB}
	require.NoError(t, repo.Create(context.Background(), admin))
	require.NoError(t, repo.Create(context.Background(), imported))

	all, err := svc.List(context.Background(), "BOGUS")
	require.NoError(t, err)
	assert.Len(t, all, 2) // filter lạ = không filter

	tmdbOnly, err := svc.List(context.Background(), model.SourceTMDB)
	require.NoError(t, err)
	require.Len(t, tmdbOnly, 1)
	assert.Equal(t, model.SourceTMDB, tmdbOnly[0].Source)
}
