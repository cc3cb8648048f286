package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinema-backend/internal/domains/film/model"
	"cinema-backend/pkg/database"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository tạo film repository với pgx pool
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

const filmColumns = `id, title, description, release_date, evaluation, status, source, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, f *model.Film, authorIDs []uuid.UUID) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO films (id, title, description, release_date, evaluation, status, source)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			f.ID, f.Title, f.Description, f.ReleaseDate, f.Evaluation, f.Status, f.Source,
		).Scan(&f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return err
		}

		return insertAuthors(ctx, tx, f.ID, authorIDs)
	})
	if err != nil {
		return mapFilmError(err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films WHERE id = $1`
	f, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	authors, err := r.loadAuthors(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	f.Authors = authors

	return f, nil
}

func (r *postgresRepository) FindByTitle(ctx context.Context, title string) (*model.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films WHERE title = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, title))
}

func (r *postgresRepository) List(ctx context.Context, filter ListFilter) ([]*model.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films`
	conditions := []string{}
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Source != "" {
		args = append(args, filter.Source)
		conditions = append(conditions, fmt.Sprintf("source = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY title"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list films: %w", err)
	}
	defer rows.Close()

	var films []*model.Film
	for rows.Next() {
		f, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, f)
	}

	return films, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, f *model.Film, authorIDs *[]uuid.UUID) error {
	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE films
			SET title = $2, description = $3, release_date = $4, evaluation = $5, status = $6, updated_at = NOW()
			WHERE id = $1
			RETURNING updated_at`

		err := tx.QueryRow(ctx, query,
			f.ID, f.Title, f.Description, f.ReleaseDate, f.Evaluation, f.Status,
		).Scan(&f.UpdatedAt)
		if err != nil {
			return err
		}

		if authorIDs == nil {
			return nil
		}

		// Thay toàn bộ author set
		if _, err := tx.Exec(ctx, `DELETE FROM film_authors WHERE film_id = $1`, f.ID); err != nil {
			return err
		}

		return insertAuthors(ctx, tx, f.ID, *authorIDs)
	})
	if err != nil {
		return mapFilmError(err)
	}

	return nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE films SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update film status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrFilmNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM films WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete film: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrFilmNotFound
	}

	return nil
}

func (r *postgresRepository) GetOrCreateByTitle(ctx context.Context, f *model.Film) (*model.Film, bool, error) {
	query := `
		INSERT INTO films (id, title, description, release_date, evaluation, status, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (title) DO NOTHING
		RETURNING ` + filmColumns

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	created, err := r.scanOne(r.db.QueryRow(ctx, query,
		f.ID, f.Title, f.Description, f.ReleaseDate, f.Evaluation, f.Status, f.Source,
	))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, model.ErrFilmNotFound) {
		return nil, false, err
	}

	// Conflict: title đã tồn tại, giữ nguyên row cũ
	existing, err := r.FindByTitle(ctx, f.Title)
	if err != nil {
		return nil, false, err
	}

	return existing, false, nil
}

func (r *postgresRepository) AddAuthor(ctx context.Context, filmID, authorID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO film_authors (film_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, filmID, authorID)
	if err != nil {
		return false, mapFilmError(err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) loadAuthors(ctx context.Context, filmID uuid.UUID) ([]model.AuthorSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, u.id, u.username, u.email, u.first_name, u.last_name
		FROM film_authors fa
		JOIN authors a ON a.id = fa.author_id
		JOIN users u ON u.id = a.user_id
		WHERE fa.film_id = $1
		ORDER BY u.last_name, u.first_name`, filmID)
	if err != nil {
		return nil, fmt.Errorf("failed to load film authors: %w", err)
	}
	defer rows.Close()

	var authors []model.AuthorSummary
	for rows.Next() {
		var a model.AuthorSummary
		err := rows.Scan(&a.ID, &a.User.ID, &a.User.Username, &a.User.Email,
			&a.User.FirstName, &a.User.LastName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author summary: %w", err)
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

func (r *postgresRepository) scanOne(row pgx.Row) (*model.Film, error) {
	var f model.Film
	err := row.Scan(
		&f.ID, &f.Title, &f.Description, &f.ReleaseDate, &f.Evaluation,
		&f.Status, &f.Source, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrFilmNotFound
		}
		return nil, fmt.Errorf("failed to scan film: %w", err)
	}

	return &f, nil
}

func insertAuthors(ctx context.Context, tx pgx.Tx, filmID uuid.UUID, authorIDs []uuid.UUID) error {
	for _, authorID := range authorIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO film_authors (film_id, author_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, filmID, authorID)
		if err != nil {
			return err
		}
	}

	return nil
}

// mapFilmError dịch SQLSTATE sang domain errors
func mapFilmError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return model.ErrFilmExists
		case "23503":
			return model.ErrAuthorNotFound
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrFilmNotFound
	}

	return fmt.Errorf("film repository: %w", err)
}
