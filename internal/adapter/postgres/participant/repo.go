// Package participant implements the remote Participant store using PostgreSQL.
package participant

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

var columns = []string{"id", "context_id", "name", "color", "created_at", "updated_at"}

// Repo provides participant persistence backed by PostgreSQL.
// Every query is filtered by the scope's context id.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new participant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all participants of the scope, oldest first.
func (r *Repo) List(ctx context.Context, scope domain.Scope) ([]domain.Participant, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("participants").
		Where(sq.Eq{"context_id": scope.ContextID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "participants", scope.ContextID)
	}

	participants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Participant, error) {
		p, err := scanParticipant(row)
		if err != nil {
			return domain.Participant{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "participants", scope.ContextID)
	}

	return participants, nil
}

// GetByID returns a participant of the scope.
func (r *Repo) GetByID(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.Participant, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("participants").
		Where(sq.Eq{"id": id, "context_id": scope.ContextID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	p, err := scanParticipant(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "participant", id)
	}

	return p, nil
}

// Create inserts a participant into the scope. A zero ID is replaced by a
// fresh one; the scope's user is recorded as creator.
func (r *Repo) Create(ctx context.Context, scope domain.Scope, p domain.Participant) (*domain.Participant, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("participants").
		Columns("id", "context_id", "context_type", "user_id", "name", "color").
		Values(p.ID, scope.ContextID, string(scope.ContextType), postgres.NullUUID(scope.UserID), p.Name, p.Color).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanParticipant(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "participant", p.ID)
	}

	return created, nil
}

// Update applies a partial update to a participant of the scope and returns
// the stored row. An empty update only checks existence.
func (r *Repo) Update(ctx context.Context, scope domain.Scope, id uuid.UUID, upd domain.ParticipantUpdate) (*domain.Participant, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, scope, id)
	}

	b := postgres.Builder().
		Update("participants").
		Where(sq.Eq{"id": id, "context_id": scope.ContextID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.Color != nil {
		b = b.Set("color", *upd.Color)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	updated, err := scanParticipant(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "participant", id)
	}

	return updated, nil
}

// Delete removes a participant of the scope. Game links that reference it
// are left untouched.
func (r *Repo) Delete(ctx context.Context, scope domain.Scope, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("participants").
		Where(sq.Eq{"id": id, "context_id": scope.ContextID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "participant", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "participant", id)
	}

	return nil
}

func scanParticipant(row pgx.Row) (*domain.Participant, error) {
	var p domain.Participant
	if err := row.Scan(&p.ID, &p.ContextID, &p.Name, &p.Color, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
