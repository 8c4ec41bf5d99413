// Package testhelper provides a PostgreSQL container and seed helpers for
// repository integration tests.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/scorekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scorekeeper-backend/internal/config"
)

const (
	dbUser     = "scores"
	dbPassword = "scores-test"
	dbName     = "scores"
)

var (
	once      sync.Once
	sharedCfg config.RemoteConfig
	initErr   error
)

// SetupTestDB returns a pool connected to a shared PostgreSQL container with
// the schema migrated. The container is started once per test binary; the
// pool is closed via t.Cleanup. Tests are skipped with -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("testhelper: postgres integration test skipped in short mode")
	}

	once.Do(func() {
		sharedCfg, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, sharedCfg, discardLogger())
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// startContainer runs postgres and applies migrations. The returned config
// mirrors production: credentials-free URL plus the password as access key.
func startContainer() (config.RemoteConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPassword,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return config.RemoteConfig{}, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return config.RemoteConfig{}, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return config.RemoteConfig{}, fmt.Errorf("container port: %w", err)
	}

	cfg := config.RemoteConfig{
		URL:             fmt.Sprintf("postgres://%s@%s/%s?sslmode=disable", dbUser, net.JoinHostPort(host, port.Port()), dbName),
		AccessKey:       dbPassword,
		MaxConns:        4,
		MinConns:        0,
		ConnectAttempts: 5,
		ConnectDelay:    200 * time.Millisecond,
	}

	pool, err := postgres.NewPool(ctx, cfg, discardLogger())
	if err != nil {
		return config.RemoteConfig{}, err
	}
	defer pool.Close()

	if err := postgres.MigrateUp(ctx, pool, discardLogger()); err != nil {
		return config.RemoteConfig{}, err
	}

	return cfg, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
