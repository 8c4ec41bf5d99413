// Package user implements the remote User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/scorekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

var columns = []string{"id", "telegram_id", "username", "first_name", "last_name", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByTelegramID returns the user registered for the given Telegram id.
func (r *Repo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where(sq.Eq{"telegram_id": telegramID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", telegramID)
	}

	return u, nil
}

// Create inserts a new user and returns the persisted row. A zero ID is
// replaced by a fresh one. A duplicate Telegram id yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("users").
		Columns("id", "telegram_id", "username", "first_name", "last_name").
		Values(id, u.TelegramID, u.Username, u.FirstName, u.LastName).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.TelegramID)
	}

	return created, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
