package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cinema-backend/internal/domains/spectator/model"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository tạo spectator repository với pgx pool
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

const selectSpectator = `
	SELECT s.id, s.user_id, s.bio, s.avatar_key, s.created_at, s.updated_at,
	       u.id, u.username, u.email, u.first_name, u.last_name
	FROM spectators s
	JOIN users u ON u.id = s.user_id`

func (r *postgresRepository) Create(ctx context.Context, s *model.Spectator) error {
	query := `
		INSERT INTO spectators (id, user_id, bio)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query, s.ID, s.UserID, s.Bio).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSpectatorExists
		}
		return fmt.Errorf("failed to create spectator: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Spectator, error) {
	return r.scanOne(r.db.QueryRow(ctx, selectSpectator+` WHERE s.id = $1`, id))
}

func (r *postgresRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Spectator, error) {
	return r.scanOne(r.db.QueryRow(ctx, selectSpectator+` WHERE s.user_id = $1`, userID))
}

func (r *postgresRepository) UpdateBio(ctx context.Context, id uuid.UUID, bio string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE spectators SET bio = $2, updated_at = NOW() WHERE id = $1`, id, bio)
	if err != nil {
		return fmt.Errorf("failed to update spectator bio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSpectatorNotFound
	}

	return nil
}

func (r *postgresRepository) UpdateAvatarKey(ctx context.Context, id uuid.UUID, key string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE spectators SET avatar_key = $2, updated_at = NOW() WHERE id = $1`, id, key)
	if err != nil {
		return fmt.Errorf("failed to update spectator avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSpectatorNotFound
	}

	return nil
}

func (r *postgresRepository) scanOne(row pgx.Row) (*model.Spectator, error) {
	var s model.Spectator
	err := row.Scan(
		&s.ID, &s.UserID, &s.Bio, &s.AvatarKey, &s.CreatedAt, &s.UpdatedAt,
		&s.User.ID, &s.User.Username, &s.User.Email, &s.User.FirstName, &s.User.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSpectatorNotFound
		}
		return nil, fmt.Errorf("failed to scan spectator: %w", err)
	}

	return &s, nil
}
