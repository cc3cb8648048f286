package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "cinema-backend/internal/domains/author/model"
	"cinema-backend/internal/domains/film/model"
	"cinema-backend/internal/domains/film/repository"
	"cinema-backend/internal/domains/user"
	"cinema-backend/internal/infrastructure/tmdb"
)

// ==================== Fakes ====================

type fakeFilmRepo struct {
	films      map[uuid.UUID]*model.Film
	links      map[uuid.UUID]map[uuid.UUID]bool
	lastFilter repository.ListFilter
}

func newFakeFilmRepo() *fakeFilmRepo {
	return &fakeFilmRepo{
		films: make(map[uuid.UUID]*model.Film),
		links: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (r *fakeFilmRepo) Create(ctx context.Context, f *model.Film, authorIDs []uuid.UUID) error {
	if r.findByTitle(f.Title) != nil {
		return model.ErrFilmExists
	}
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.CreatedAt = time.Now()
	f.UpdatedAt = f.CreatedAt
	r.films[f.ID] = f
	for _, authorID := range authorIDs {
		r.link(f.ID, authorID)
	}
	return nil
}

func (r *fakeFilmRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Film, error) {
	f, ok := r.films[id]
	if !ok {
		return nil, model.ErrFilmNotFound
	}
	return f, nil
}

func (r *fakeFilmRepo) FindByTitle(ctx context.Context, title string) (*model.Film, error) {
	if f := r.findByTitle(title); f != nil {
		return f, nil
	}
	return nil, model.ErrFilmNotFound
}

func (r *fakeFilmRepo) List(ctx context.Context, filter repository.ListFilter) ([]*model.Film, error) {
	r.lastFilter = filter
	var films []*model.Film
	for _, f := range r.films {
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		if filter.Source != "" && f.Source != filter.Source {
			continue
		}
		films = append(films, f)
	}
	return films, nil
}

func (r *fakeFilmRepo) Update(ctx context.Context, f *model.Film, authorIDs *[]uuid.UUID) error {
	if _, ok := r.films[f.ID]; !ok {
		return model.ErrFilmNotFound
	}
	r.films[f.ID] = f
	if authorIDs != nil {
		r.links[f.ID] = make(map[uuid.UUID]bool)
		for _, authorID := range *authorIDs {
			r.link(f.ID, authorID)
		}
	}
	return nil
}

func (r *fakeFilmRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	f, ok := r.films[id]
	if !ok {
		return model.ErrFilmNotFound
	}
	f.Status = status
	return nil
}

func (r *fakeFilmRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.films[id]; !ok {
		return model.ErrFilmNotFound
	}
	delete(r.films, id)
	return nil
}

func (r *fakeFilmRepo) GetOrCreateByTitle(ctx context.Context, f *model.Film) (*model.Film, bool, error) {
	if existing := r.findByTitle(f.Title); existing != nil {
		return existing, false, nil
	}
	if err := r.Create(ctx, f, nil); err != nil {
		return nil, false, err
	}
	return f, true, nil
}

func (r *fakeFilmRepo) AddAuthor(ctx context.Context, filmID, authorID uuid.UUID) (bool, error) {
	if _, ok := r.films[filmID]; !ok {
		return false, model.ErrFilmNotFound
	}
	if r.links[filmID][authorID] {
		return false, nil
	}
	r.link(filmID, authorID)
	return true, nil
}

func (r *fakeFilmRepo) findByTitle(title string) *model.Film {
	for _, f := range r.films {
		if f.Title == title {
			return f
		}
	}
	return nil
}

func (r *fakeFilmRepo) link(filmID, authorID uuid.UUID) {
	if r.links[filmID] == nil {
		r.links[filmID] = make(map[uuid.UUID]bool)
	}
	r.links[filmID][authorID] = true
}

type fakeAuthorRepo struct {
	byUser map[uuid.UUID]*authormodel.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{byUser: make(map[uuid.UUID]*authormodel.Author)}
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *authormodel.Author) error {
	if _, ok := r.byUser[a.UserID]; ok {
		return authormodel.ErrAuthorExists
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.byUser[a.UserID] = a
	return nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error) {
	for _, a := range r.byUser {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, authormodel.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*authormodel.Author, error) {
	a, ok := r.byUser[userID]
	if !ok {
		return nil, authormodel.ErrAuthorNotFound
	}
	return a, nil
}

func (r *fakeAuthorRepo) List(ctx context.Context, source string) ([]*authormodel.Author, error) {
	var authors []*authormodel.Author
	for _, a := range r.byUser {
		if source == "" || a.Source == source {
			authors = append(authors, a)
		}
	}
	return authors, nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, a *authormodel.Author) error {
	return nil
}

func (r *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for userID, a := range r.byUser {
		if a.ID == id {
			delete(r.byUser, userID)
			return nil
		}
	}
	return authormodel.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) CountFilms(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeAuthorRepo) GetOrCreateForUser(ctx context.Context, userID uuid.UUID, source string) (*authormodel.Author, bool, error) {
	if a, ok := r.byUser[userID]; ok {
		return a, false, nil
	}
	a := &authormodel.Author{ID: uuid.New(), UserID: userID, Source: source}
	r.byUser[userID] = a
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

type fakeTMDBClient struct {
	pages        map[int]*tmdb.PageResult
	pageErrs     map[int]bool
	credits      map[int64]*tmdb.Credits
	creditErrs   map[int64]bool
	popularCalls int
}

func newFakeTMDBClient() *fakeTMDBClient {
	return &fakeTMDBClient{
		pages:      make(map[int]*tmdb.PageResult),
		pageErrs:   make(map[int]bool),
		credits:    make(map[int64]*tmdb.Credits),
		creditErrs: make(map[int64]bool),
	}
}

func (c *fakeTMDBClient) FetchPopular(ctx context.Context, page int) (*tmdb.PageResult, error) {
	c.popularCalls++
	if c.pageErrs[page] {
		return nil, errors.New("unexpected status code: 500")
	}
	if p, ok := c.pages[page]; ok {
		return p, nil
	}
	return &tmdb.PageResult{Page: page}, nil
}

func (c *fakeTMDBClient) FetchCredits(ctx context.Context, movieID int64) (*tmdb.Credits, error) {
	if c.creditErrs[movieID] {
		return nil, errors.New("unexpected status code: 404")
	}
	if cr, ok := c.credits[movieID]; ok {
		return cr, nil
	}
	return &tmdb.Credits{}, nil
}

// ==================== Tests ====================

func floatPtr(v float64) *float64 { return &v }

func TestEvaluationFromVote(t *testing.T) {
	tests := []struct {
		name string
		vote *float64
		want int
	}{
		{"absent vote defaults to neutral", nil, 3},
		{"zero vote treated as absent", floatPtr(0), 3},
		{"low vote clamps to minimum", floatPtr(2), 1},
		{"midpoint rounds up", floatPtr(5), 3},
		{"high vote rounds up", floatPtr(9.6), 5},
		{"maximum vote", floatPtr(10), 5},
		{"over-range vote clamps to maximum", floatPtr(12), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluationFromVote(tt.vote))
		})
	}
}

func newImportFixture(apiKey string) (*ImportService, *fakeFilmRepo, *fakeAuthorRepo, *fakeUserRepo, *fakeTMDBClient) {
	films := newFakeFilmRepo()
	authors := newFakeAuthorRepo()
	users := newFakeUserRepo()
	client := newFakeTMDBClient()
	svc := NewImportService(films, authors, users, client, apiKey, 2)
	return svc, films, authors, users, client
}

func TestImportCreatesFilmsAndLinksDirectors(t *testing.T) {
	svc, films, authors, users, client := newImportFixture("test-key")

	client.pages[1] = &tmdb.PageResult{
		Page: 1,
		Results: []tmdb.Movie{
			{ID: 27205, Title: "Inception", Overview: "A thief enters dreams.", ReleaseDate: "2010-07-16", VoteAverage: floatPtr(8.4)},
			{ID: 603, Title: "The Matrix", Overview: "Welcome to the real world.", ReleaseDate: "1999-03-31", VoteAverage: floatPtr(8.2)},
		},
	}
	client.credits[27205] = &tmdb.Credits{Crew: []tmdb.CrewMember{
		{Name: "Christopher Nolan", Job: "Director"},
		{Name: "Hans Zimmer", Job: "Original Music Composer"},
	}}
	client.credits[603] = &tmdb.Credits{Crew: []tmdb.CrewMember{
		{Name: "Lana Wachowski", Job: "Director"},
		{Name: "Lilly Wachowski", Job: "Director"},
	}}

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.PagesFetched) // page 2 trống nhưng vẫn fetch được
	assert.Equal(t, 2, summary.FilmsCreated)
	assert.Equal(t, 0, summary.FilmsSkipped)
	assert.Equal(t, 3, summary.AuthorsLinked)

	inception, err := films.FindByTitle(context.Background(), "Inception")
	require.NoError(t, err)
	assert.Equal(t, "PUBLISHED", inception.Status)
	assert.Equal(t, "TMDB", inception.Source)
	assert.Equal(t, 4, inception.Evaluation) // round(8.4/2) = 4
	require.NotNil(t, inception.ReleaseDate)
	assert.Equal(t, "2010-07-16", inception.ReleaseDate.Format("2006-01-02"))

	// Director username: spaces → underscores
	nolan, err := users.FindByUsername(context.Background(), "Christopher_Nolan")
	require.NoError(t, err)
	assert.Equal(t, "Christopher", nolan.FirstName)
	assert.Equal(t, "Nolan", nolan.LastName)

	nolanAuthor, err := authors.FindByUserID(context.Background(), nolan.ID)
	require.NoError(t, err)
	assert.Equal(t, "TMDB", nolanAuthor.Source)
	assert.True(t, films.links[inception.ID][nolanAuthor.ID])

	// Non-director crew không tạo author
	_, err = users.FindByUsername(context.Background(), "Hans_Zimmer")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestImportIsIdempotent(t *testing.T) {
	svc, films, _, _, client := newImportFixture("test-key")

	client.pages[1] = &tmdb.PageResult{
		Page: 1,
		Results: []tmdb.Movie{
			{ID: 1, Title: "Film A", VoteAverage: floatPtr(7)},
			{ID: 2, Title: "Film B", VoteAverage: floatPtr(6)},
		},
	}
	client.credits[1] = &tmdb.Credits{Crew: []tmdb.CrewMember{{Name: "Jane Doe", Job: "Director"}}}
	client.credits[2] = &tmdb.Credits{Crew: []tmdb.CrewMember{{Name: "Jane Doe", Job: "Director"}}}

	first, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, first.FilmsCreated)
	assert.Equal(t, 2, first.AuthorsLinked) // cùng một director, hai phim

	second, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.FilmsCreated)
	assert.Equal(t, 2, second.FilmsSkipped)
	assert.Equal(t, 0, second.AuthorsLinked)

	assert.Len(t, films.films, 2)
}

func TestImportStopsOnPageFailure(t *testing.T) {
	svc, films, _, _, client := newImportFixture("test-key")

	client.pages[1] = &tmdb.PageResult{
		Page:    1,
		Results: []tmdb.Movie{{ID: 1, Title: "Kept Film", VoteAverage: floatPtr(8)}},
	}
	client.pageErrs[2] = true

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)

	// Page 1 committed trước khi page 2 fail
	assert.Equal(t, 1, summary.PagesFetched)
	assert.Equal(t, 1, summary.FilmsCreated)

	_, err = films.FindByTitle(context.Background(), "Kept Film")
	assert.NoError(t, err)
}

func TestImportSkipsCreditsFailure(t *testing.T) {
	svc, films, authors, _, client := newImportFixture("test-key")

	client.pages[1] = &tmdb.PageResult{
		Page: 1,
		Results: []tmdb.Movie{
			{ID: 1, Title: "No Credits Film", VoteAverage: floatPtr(8)},
			{ID: 2, Title: "Linked Film", VoteAverage: floatPtr(8)},
		},
	}
	client.creditErrs[1] = true
	client.credits[2] = &tmdb.Credits{Crew: []tmdb.CrewMember{{Name: "John Smith", Job: "Director"}}}

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)

	// Cả hai phim đều giữ, chỉ phim có credits được link
	assert.Equal(t, 2, summary.FilmsCreated)
	assert.Equal(t, 1, summary.AuthorsLinked)

	noCredits, err := films.FindByTitle(context.Background(), "No Credits Film")
	require.NoError(t, err)
	assert.Empty(t, films.links[noCredits.ID])

	assert.Len(t, authors.byUser, 1)
}

func TestImportRejectsMissingAPIKey(t *testing.T) {
	svc, _, _, _, client := newImportFixture("")

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, 0, client.popularCalls) // không có network call nào
}

func TestImportKeepsFilmWithBadReleaseDate(t *testing.T) {
	svc, films, _, _, client := newImportFixture("test-key")

	client.pages[1] = &tmdb.PageResult{
		Page:    1,
		Results: []tmdb.Movie{{ID: 1, Title: "Dateless Film", ReleaseDate: "not-a-date", VoteAverage: floatPtr(6)}},
	}

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FilmsCreated)

	f, err := films.FindByTitle(context.Background(), "Dateless Film")
	require.NoError(t, err)
	assert.Nil(t, f.ReleaseDate)
}

func TestImportNeverMutatesExistingFilm(t *testing.T) {
	svc, films, _, _, client := newImportFixture("test-key")

	// Phim admin tạo trước đó với cùng title
	existing := &model.Film{
		Title:       "Shared Title",
		Description: "Admin description",
		Evaluation:  5,
		Status:      "DRAFT",
		Source:      "ADMIN",
	}
	require.NoError(t, films.Create(context.Background(), existing, nil))

	client.pages[1] = &tmdb.PageResult{
		Page:    1,
		Results: []tmdb.Movie{{ID: 1, Title: "Shared Title", Overview: "TMDb overview", VoteAverage: floatPtr(9)}},
	}

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.FilmsCreated)
	assert.Equal(t, 1, summary.FilmsSkipped)

	f, err := films.FindByTitle(context.Background(), "Shared Title")
	require.NoError(t, err)
	assert.Equal(t, "Admin description", f.Description)
	assert.Equal(t, 5, f.Evaluation)
	assert.Equal(t, "DRAFT", f.Status)
	assert.Equal(t, "ADMIN", f.Source)
}
