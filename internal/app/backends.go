package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/scorekeeper-backend/internal/adapter/local"
	"github.com/heartmarshall/scorekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scorekeeper-backend/internal/adapter/postgres/game"
	"github.com/heartmarshall/scorekeeper-backend/internal/adapter/postgres/participant"
	"github.com/heartmarshall/scorekeeper-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/scorekeeper-backend/internal/config"
	"github.com/heartmarshall/scorekeeper-backend/internal/service/identity"
	"github.com/heartmarshall/scorekeeper-backend/internal/service/scoring"
)

// Backends holds the opened storage backends. Pool is nil when the remote
// store is not configured.
type Backends struct {
	KV    *local.KV
	Pool  *pgxpool.Pool
	Local scoring.Stores
	// Remote is nil when the remote store is not configured.
	Remote *scoring.Stores

	users *user.Repo
}

// OpenBackends opens the local store and, when configured, connects to the
// remote store and applies pending schema migrations.
func OpenBackends(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backends, error) {
	kv := local.NewOsKV(cfg.Local.DataDir)
	if err := kv.Ping(ctx); err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	b := &Backends{
		KV: kv,
		Local: scoring.Stores{
			Participants: local.NewParticipantStore(kv),
			Games:        local.NewGameStore(kv),
		},
	}

	if !cfg.Remote.IsConfigured() {
		logger.InfoContext(ctx, "remote store not configured, using local storage only",
			slog.String("data_dir", cfg.Local.DataDir),
		)
		return b, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.Remote, logger)
	if err != nil {
		return nil, fmt.Errorf("open remote store: %w", err)
	}

	if cfg.Remote.AutoMigrate {
		if err := postgres.MigrateUp(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate remote store: %w", err)
		}
	}

	b.Pool = pool
	b.users = user.New(pool)
	b.Remote = &scoring.Stores{
		Participants: participant.New(pool),
		Games:        game.New(pool),
	}

	logger.InfoContext(ctx, "remote store connected",
		slog.Int("max_conns", int(cfg.Remote.MaxConns)),
	)

	return b, nil
}

// Identity creates the identity service. Without a remote store it never
// resolves a user.
func (b *Backends) Identity(logger *slog.Logger, cacheSize int) (*identity.Service, error) {
	if b.users == nil {
		return identity.NewService(logger, nil, cacheSize)
	}
	return identity.NewService(logger, b.users, cacheSize)
}

// Close releases the remote pool, if any.
func (b *Backends) Close() {
	if b.Pool != nil {
		b.Pool.Close()
	}
}
