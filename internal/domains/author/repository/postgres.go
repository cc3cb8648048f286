package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinema-backend/internal/domains/author/model"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository tạo author repository với pgx pool
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

const selectAuthor = `
	SELECT a.id, a.user_id, a.date_of_birth, a.source, a.created_at, a.updated_at,
	       u.id, u.username, u.email, u.first_name, u.last_name
	FROM authors a
	JOIN users u ON u.id = a.user_id`

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) error {
	query := `
		INSERT INTO authors (id, user_id, date_of_birth, source)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query, a.ID, a.UserID, a.DateOfBirth, a.Source).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAuthorExists
		}
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := r.scanOne(r.db.QueryRow(ctx, selectAuthor+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, err
	}

	// Load films của author cho detail view
	films, err := r.loadFilms(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.Films = films

	return a, nil
}

func (r *postgresRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Author, error) {
	return r.scanOne(r.db.QueryRow(ctx, selectAuthor+` WHERE a.user_id = $1`, userID))
}

func (r *postgresRepository) List(ctx context.Context, source string) ([]*model.Author, error) {
	query := selectAuthor
	args := []interface{}{}
	if source != "" {
		query += ` WHERE a.source = $1`
		args = append(args, source)
	}
	query += ` ORDER BY u.last_name, u.first_name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []*model.Author
	for rows.Next() {
		a, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	query := `
		UPDATE authors
		SET date_of_birth = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query, a.ID, a.DateOfBirth).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAuthorNotFound
		}
		return fmt.Errorf("failed to update author: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresRepository) CountFilms(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM film_authors WHERE author_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count author films: %w", err)
	}

	return count, nil
}

func (r *postgresRepository) GetOrCreateForUser(ctx context.Context, userID uuid.UUID, source string) (*model.Author, bool, error) {
	query := `
		INSERT INTO authors (id, user_id, source)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, uuid.New(), userID, source).Scan(&id)
	if err == nil {
		a, findErr := r.FindByUserID(ctx, userID)
		return a, true, findErr
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to get-or-create author: %w", err)
	}

	// Conflict: profile đã tồn tại
	a, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	return a, false, nil
}

func (r *postgresRepository) loadFilms(ctx context.Context, authorID uuid.UUID) ([]model.FilmSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.title, f.status, f.evaluation
		FROM film_authors fa
		JOIN films f ON f.id = fa.film_id
		WHERE fa.author_id = $1
		ORDER BY f.title`, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load author films: %w", err)
	}
	defer rows.Close()

	var films []model.FilmSummary
	for rows.Next() {
		var f model.FilmSummary
		if err := rows.Scan(&f.ID, &f.Title, &f.Status, &f.Evaluation); err != nil {
			return nil, fmt.Errorf("failed to scan film summary: %w", err)
		}
		films = append(films, f)
	}

	return films, rows.Err()
}

func (r *postgresRepository) scanOne(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID, &a.UserID, &a.DateOfBirth, &a.Source, &a.CreatedAt, &a.UpdatedAt,
		&a.User.ID, &a.User.Username, &a.User.Email, &a.User.FirstName, &a.User.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to scan author: %w", err)
	}

	return &a, nil
}
