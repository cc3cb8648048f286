package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinema-backend/internal/domains/favorite/model"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository tạo favorite repository với pgx pool
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, f *model.Favorite) error {
	query := `
		INSERT INTO favorites (id, spectator_id, film_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query, f.ID, f.SpectatorID, f.FilmID).Scan(&f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return model.ErrAlreadyFavorited
			case "23503":
				return model.ErrFilmNotFound
			}
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListBySpectator(ctx context.Context, spectatorID uuid.UUID) ([]*model.Favorite, error) {
	rows, err := r.db.Query(ctx, `
		SELECT fa.id, fa.spectator_id, fa.film_id, fa.created_at, f.title
		FROM favorites fa
		JOIN films f ON f.id = fa.film_id
		WHERE fa.spectator_id = $1
		ORDER BY fa.created_at DESC`, spectatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*model.Favorite
	for rows.Next() {
		var f model.Favorite
		err := rows.Scan(&f.ID, &f.SpectatorID, &f.FilmID, &f.CreatedAt, &f.FilmTitle)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, &f)
	}

	return favorites, rows.Err()
}

func (r *postgresRepository) Delete(ctx context.Context, id, spectatorID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM favorites WHERE id = $1 AND spectator_id = $2`, id, spectatorID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrFavoriteNotFound
	}

	return nil
}
