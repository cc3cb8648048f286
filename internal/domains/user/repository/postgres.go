package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinema-backend/internal/domains/user"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository tạo user repository với pgx pool
func NewPostgresRepository(db *pgxpool.Pool) user.Repository {
	return &postgresRepository{db: db}
}

const userColumns = `id, username, email, first_name, last_name, password_hash, is_staff, is_active, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, email, first_name, last_name, password_hash, is_staff, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		u.ID, u.Username, u.Email, u.FirstName, u.LastName,
		u.PasswordHash, u.IsStaff, u.IsActive,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrUsernameExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

// GetOrCreate dùng ON CONFLICT DO NOTHING để idempotent theo username
func (r *postgresRepository) GetOrCreate(ctx context.Context, u *user.User) (*user.User, bool, error) {
	query := `
		INSERT INTO users (id, username, email, first_name, last_name, password_hash, is_staff, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (username) DO NOTHING
		RETURNING ` + userColumns

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	created, err := r.scanOne(r.db.QueryRow(ctx, query,
		u.ID, u.Username, u.Email, u.FirstName, u.LastName,
		u.PasswordHash, u.IsStaff, u.IsActive,
	))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, false, err
	}

	// Conflict: row đã tồn tại, load lại theo username
	existing, err := r.FindByUsername(ctx, u.Username)
	if err != nil {
		return nil, false, err
	}

	return existing, false, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query, u.ID, u.Email, u.FirstName, u.LastName).Scan(&u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *postgresRepository) scanOne(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.IsStaff, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &u, nil
}
