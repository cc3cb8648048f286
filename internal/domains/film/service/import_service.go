package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	authormodel "cinema-backend/internal/domains/author/model"
	authorrepo "cinema-backend/internal/domains/author/repository"
	"cinema-backend/internal/domains/film/model"
	"cinema-backend/internal/domains/film/repository"
	"cinema-backend/internal/domains/user"
	"cinema-backend/internal/infrastructure/tmdb"
)

// ErrMissingAPIKey báo import bị từ chối vì thiếu TMDB_API_KEY
var ErrMissingAPIKey = errors.New("TMDB API key is not configured")

// ImportSummary là kết quả của một lần import
type ImportSummary struct {
	PagesFetched  int
	FilmsCreated  int
	FilmsSkipped  int
	AuthorsLinked int
}

// ImportService chạy một lần đồng bộ popular films từ TMDb
type ImportService struct {
	films   repository.Repository
	authors authorrepo.Repository
	users   user.Repository
	client  tmdb.Client
	apiKey  string
	pages   int
}

// NewImportService tạo TMDb import service
func NewImportService(
	films repository.Repository,
	authors authorrepo.Repository,
	users user.Repository,
	client tmdb.Client,
	apiKey string,
	pages int,
) *ImportService {
	return &ImportService{
		films:   films,
		authors: authors,
		users:   users,
		client:  client,
		apiKey:  apiKey,
		pages:   pages,
	}
}

// EvaluationFromVote map TMDb vote_average (0..10) sang evaluation (1..5)
// Vote vắng mặt hoặc bằng 0 coi như không có dữ liệu → neutral 3
func EvaluationFromVote(vote *float64) int {
	if vote == nil || *vote == 0 {
		return 3
	}

	e := int(math.Round(*vote / 2))
	if e < 1 {
		return 1
	}
	if e > 5 {
		return 5
	}

	return e
}

// Run thực hiện import. Page fetch lỗi dừng pagination nhưng giữ lại
// những gì đã commit; credits lỗi chỉ bỏ qua crew linking của phim đó.
func (s *ImportService) Run(ctx context.Context) (*ImportSummary, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	summary := &ImportSummary{}

	for page := 1; page <= s.pages; page++ {
		result, err := s.client.FetchPopular(ctx, page)
		if err != nil {
			log.Warn().
				Err(err).
				Int("page", page).
				Msg("⚠️ Page fetch failed, stopping pagination")
			break
		}
		summary.PagesFetched++

		log.Info().
			Int("page", page).
			Int("movies", len(result.Results)).
			Msg("Importing page")

		for _, movie := range result.Results {
			s.importMovie(ctx, movie, summary)
		}
	}

	log.Info().
		Int("pages_fetched", summary.PagesFetched).
		Int("films_created", summary.FilmsCreated).
		Int("films_skipped", summary.FilmsSkipped).
		Int("authors_linked", summary.AuthorsLinked).
		Msg("✅ Import finished")

	return summary, nil
}

func (s *ImportService) importMovie(ctx context.Context, movie tmdb.Movie, summary *ImportSummary) {
	f := &model.Film{
		Title:       movie.Title,
		Description: movie.Overview,
		Evaluation:  EvaluationFromVote(movie.VoteAverage),
		Status:      model.StatusPublished,
		Source:      model.SourceTMDB,
	}

	if movie.ReleaseDate != "" {
		if d, err := time.Parse(dateLayout, movie.ReleaseDate); err == nil {
			f.ReleaseDate = &d
		} else {
			log.Warn().
				Str("title", movie.Title).
				Str("release_date", movie.ReleaseDate).
				Msg("Unparseable release date, keeping film without it")
		}
	}

	// Upsert-by-title: create-or-skip, không bao giờ mutate row cũ
	f, created, err := s.films.GetOrCreateByTitle(ctx, f)
	if err != nil {
		log.Error().Err(err).Str("title", movie.Title).Msg("Failed to upsert film")
		return
	}
	if created {
		summary.FilmsCreated++
		log.Info().Str("title", f.Title).Msg("Film created")
	} else {
		summary.FilmsSkipped++
	}

	// Credits lỗi → bỏ qua crew linking, phim vẫn giữ
	credits, err := s.client.FetchCredits(ctx, movie.ID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("title", movie.Title).
			Msg("⚠️ Credits fetch failed, skipping crew linking")
		return
	}

	for _, crew := range credits.Crew {
		if crew.Job != "Director" {
			continue
		}
		if err := s.linkDirector(ctx, f, crew.Name, summary); err != nil {
			log.Error().
				Err(err).
				Str("title", f.Title).
				Str("director", crew.Name).
				Msg("Failed to link director")
		}
	}
}

func (s *ImportService) linkDirector(ctx context.Context, f *model.Film, name string, summary *ImportSummary) error {
	firstName, lastName := splitName(name)

	u, _, err := s.users.GetOrCreate(ctx, &user.User{
		Username:  strings.ReplaceAll(strings.TrimSpace(name), " ", "_"),
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
	})
	if err != nil {
		return err
	}

	a, _, err := s.authors.GetOrCreateForUser(ctx, u.ID, authormodel.SourceTMDB)
	if err != nil {
		return err
	}

	linked, err := s.films.AddAuthor(ctx, f.ID, a.ID)
	if err != nil {
		return err
	}
	if linked {
		summary.AuthorsLinked++
		log.Info().
			Str("title", f.Title).
			Str("director", name).
			Msg("Director linked")
	}

	return nil
}

func splitName(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}

	return parts[0], parts[1]
}
