// Package game implements the remote Game store using PostgreSQL.
package game

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/scorekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// Repo provides game persistence backed by PostgreSQL. A game is one row in
// games plus one row per participant in game_participants.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new game repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// List returns all games of the scope, newest first. Participant ids keep
// the order in which they were recorded.
func (r *Repo) List(ctx context.Context, scope domain.Scope) ([]domain.Game, error) {
	query, args, err := postgres.Builder().
		Select(
			"g.id", "g.context_id", "g.name", "g.date", "g.winner_id",
			"COALESCE(array_agg(gp.participant_id ORDER BY gp.position) FILTER (WHERE gp.participant_id IS NOT NULL), '{}')",
		).
		From("games g").
		LeftJoin("game_participants gp ON gp.game_id = g.id").
		Where(sq.Eq{"g.context_id": scope.ContextID}).
		GroupBy("g.id").
		OrderBy("g.date DESC", "g.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "games", scope.ContextID)
	}

	games, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Game, error) {
		var g domain.Game
		err := row.Scan(&g.ID, &g.ContextID, &g.Name, &g.Date, &g.WinnerID, &g.ParticipantIDs)
		return g, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "games", scope.ContextID)
	}

	return games, nil
}

// Create writes the game row and then all link rows in one batch. The two
// steps are not atomic: when the links fail the game row stays and a
// *domain.PartialWriteError is returned together with the created game.
func (r *Repo) Create(ctx context.Context, scope domain.Scope, g domain.Game) (*domain.Game, error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Date.IsZero() {
		g.Date = time.Now().UTC()
	}
	g.ContextID = scope.ContextID

	query, args, err := postgres.Builder().
		Insert("games").
		Columns("id", "context_id", "context_type", "user_id", "name", "date", "winner_id").
		Values(g.ID, scope.ContextID, string(scope.ContextType), postgres.NullUUID(scope.UserID), g.Name, g.Date, g.WinnerID).
		Suffix("RETURNING date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	if err := q.QueryRow(ctx, query, args...).Scan(&g.Date); err != nil {
		return nil, postgres.MapError(err, "game", g.ID)
	}

	if err := r.insertLinks(ctx, q, g); err != nil {
		return &g, &domain.PartialWriteError{GameID: g.ID, Step: "participant links", Err: err}
	}

	return &g, nil
}

func (r *Repo) insertLinks(ctx context.Context, q postgres.Querier, g domain.Game) error {
	batch := &pgx.Batch{}
	for i, pid := range g.ParticipantIDs {
		query, args, err := postgres.Builder().
			Insert("game_participants").
			Columns("game_id", "participant_id", "context_id", "position").
			Values(g.ID, pid, g.ContextID, i).
			ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		batch.Queue(query, args...)
	}

	br := q.SendBatch(ctx, batch)
	for range g.ParticipantIDs {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, "game_participant", g.ID)
		}
	}

	if err := br.Close(); err != nil {
		return postgres.MapError(err, "game_participant", g.ID)
	}

	return nil
}

// Titles returns the distinct game names of the scope, sorted.
func (r *Repo) Titles(ctx context.Context, scope domain.Scope) ([]string, error) {
	query, args, err := postgres.Builder().
		Select("DISTINCT name").
		From("games").
		Where(sq.Eq{"context_id": scope.ContextID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "game titles", scope.ContextID)
	}

	titles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "game titles", scope.ContextID)
	}

	return titles, nil
}

// Delete removes the link rows and then the game row in one transaction.
// A missing game yields domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, scope domain.Scope, id uuid.UUID) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		query, args, err := postgres.Builder().
			Delete("game_participants").
			Where(sq.Eq{"game_id": id, "context_id": scope.ContextID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "game_participant", id)
		}

		query, args, err = postgres.Builder().
			Delete("games").
			Where(sq.Eq{"id": id, "context_id": scope.ContextID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}

		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return postgres.MapError(err, "game", id)
		}
		if tag.RowsAffected() == 0 {
			return postgres.MapError(pgx.ErrNoRows, "game", id)
		}

		return nil
	})
}
