package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"cinema-backend/internal/config"
	authorrepo "cinema-backend/internal/domains/author/repository"
	filmrepo "cinema-backend/internal/domains/film/repository"
	filmservice "cinema-backend/internal/domains/film/service"
	userrepo "cinema-backend/internal/domains/user/repository"
	"cinema-backend/internal/infrastructure/database"
	"cinema-backend/internal/infrastructure/tmdb"
	"cinema-backend/pkg/logger"
)

// One-shot TMDb catalog import. Chạy lại an toàn: phim trùng title bị skip,
// director links là set-add idempotent.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment)

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	importer := filmservice.NewImportService(
		filmrepo.NewPostgresRepository(db.Pool),
		authorrepo.NewPostgresRepository(db.Pool),
		userrepo.NewPostgresRepository(db.Pool),
		tmdb.NewClient(&cfg.TMDB),
		cfg.TMDB.APIKey,
		cfg.TMDB.ImportPages,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	summary, err := importer.Run(ctx)
	if err != nil {
		if errors.Is(err, filmservice.ErrMissingAPIKey) {
			log.Error().Msg("TMDB_API_KEY is not set, aborting import")
		} else {
			log.Error().Err(err).Msg("Import failed")
		}
		os.Exit(1)
	}

	log.Info().
		Int("pages_fetched", summary.PagesFetched).
		Int("films_created", summary.FilmsCreated).
		Int("films_skipped", summary.FilmsSkipped).
		Int("authors_linked", summary.AuthorsLinked).
		Msg("🎬 TMDb import complete")
}
