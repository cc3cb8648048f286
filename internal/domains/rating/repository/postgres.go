package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinema-backend/internal/domains/rating/model"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository tạo rating repository với pgx pool
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateFilmRating(ctx context.Context, fr *model.FilmRating) error {
	query := `
		INSERT INTO film_ratings (id, film_id, spectator_id, note)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	if fr.ID == uuid.Nil {
		fr.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query, fr.ID, fr.FilmID, fr.SpectatorID, fr.Note).
		Scan(&fr.CreatedAt)
	if err != nil {
		return mapRatingError(err)
	}

	return nil
}

func (r *postgresRepository) ListFilmRatings(ctx context.Context, spectatorID uuid.UUID) ([]*model.FilmRating, error) {
	rows, err := r.db.Query(ctx, `
		SELECT fr.id, fr.film_id, fr.spectator_id, fr.note, fr.created_at, f.title
		FROM film_ratings fr
		JOIN films f ON f.id = fr.film_id
		WHERE fr.spectator_id = $1
		ORDER BY fr.created_at DESC`, spectatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list film ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*model.FilmRating
	for rows.Next() {
		var fr model.FilmRating
		err := rows.Scan(&fr.ID, &fr.FilmID, &fr.SpectatorID, &fr.Note, &fr.CreatedAt, &fr.FilmTitle)
		if err != nil {
			return nil, fmt.Errorf("failed to scan film rating: %w", err)
		}
		ratings = append(ratings, &fr)
	}

	return ratings, rows.Err()
}

func (r *postgresRepository) DeleteFilmRating(ctx context.Context, id, spectatorID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM film_ratings WHERE id = $1 AND spectator_id = $2`, id, spectatorID)
	if err != nil {
		return fmt.Errorf("failed to delete film rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRatingNotFound
	}

	return nil
}

func (r *postgresRepository) CreateAuthorRating(ctx context.Context, ar *model.AuthorRating) error {
	query := `
		INSERT INTO author_ratings (id, author_id, spectator_id, note)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	if ar.ID == uuid.Nil {
		ar.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query, ar.ID, ar.AuthorID, ar.SpectatorID, ar.Note).
		Scan(&ar.CreatedAt)
	if err != nil {
		return mapRatingError(err)
	}

	return nil
}

func (r *postgresRepository) ListAuthorRatings(ctx context.Context, spectatorID uuid.UUID) ([]*model.AuthorRating, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ar.id, ar.author_id, ar.spectator_id, ar.note, ar.created_at,
		       TRIM(u.first_name || ' ' || u.last_name)
		FROM author_ratings ar
		JOIN authors a ON a.id = ar.author_id
		JOIN users u ON u.id = a.user_id
		WHERE ar.spectator_id = $1
		ORDER BY ar.created_at DESC`, spectatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*model.AuthorRating
	for rows.Next() {
		var ar model.AuthorRating
		err := rows.Scan(&ar.ID, &ar.AuthorID, &ar.SpectatorID, &ar.Note, &ar.CreatedAt, &ar.AuthorName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author rating: %w", err)
		}
		ratings = append(ratings, &ar)
	}

	return ratings, rows.Err()
}

func (r *postgresRepository) DeleteAuthorRating(ctx context.Context, id, spectatorID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM author_ratings WHERE id = $1 AND spectator_id = $2`, id, spectatorID)
	if err != nil {
		return fmt.Errorf("failed to delete author rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRatingNotFound
	}

	return nil
}

// mapRatingError dịch SQLSTATE sang domain errors
// 23505 = duplicate (film, spectator) pair, 23503 = target không tồn tại
func mapRatingError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return model.ErrAlreadyRated
		case "23503":
			return model.ErrTargetNotFound
		}
	}

	return fmt.Errorf("rating repository: %w", err)
}
