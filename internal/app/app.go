package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/scorekeeper-backend/internal/auth"
	"github.com/heartmarshall/scorekeeper-backend/internal/config"
	"github.com/heartmarshall/scorekeeper-backend/internal/service/scoring"
	"github.com/heartmarshall/scorekeeper-backend/internal/transport/middleware"
	"github.com/heartmarshall/scorekeeper-backend/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Run is the application entry point. It loads configuration, opens the
// storage backends, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("remote_configured", cfg.Remote.IsConfigured()),
		slog.Bool("telegram_auth", cfg.Auth.TelegramEnabled()),
	)

	backends, err := OpenBackends(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backends.Close()

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler, err := newHandler(cfg, logger, backends, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newHandler wires services and transport on top of the opened backends.
func newHandler(cfg *config.Config, logger *slog.Logger, b *Backends, limiter *middleware.RateLimiter) (http.Handler, error) {
	identitySvc, err := b.Identity(logger, cfg.Identity.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("identity service: %w", err)
	}
	scoringSvc := scoring.NewService(logger, identitySvc, b.Local, b.Remote)

	sessions := auth.NewSessionManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	var authHandler *rest.AuthHandler
	if cfg.Auth.TelegramEnabled() {
		verifier := auth.NewInitDataVerifier(cfg.Auth.BotToken, cfg.Auth.InitDataMaxAge)
		authHandler = rest.NewAuthHandler(verifier, sessions, identitySvc, scoringSvc, logger)
	} else {
		logger.Warn("AUTH_BOT_TOKEN not set, telegram login disabled")
		authHandler = rest.NewAuthHandler(nil, sessions, identitySvc, scoringSvc, logger)
	}

	var health *rest.HealthHandler
	if b.Pool != nil {
		health = rest.NewHealthHandler(b.KV, b.Pool, BuildVersion())
	} else {
		health = rest.NewHealthHandler(b.KV, nil, BuildVersion())
	}

	var cors middleware.Middleware
	if cfg.CORS.AllowedOrigins != "" {
		cors = middleware.CORS(cfg.CORS)
	}

	deps := rest.RouterDeps{
		Auth:    authHandler,
		Scoring: rest.NewScoringHandler(scoringSvc),
		Health:  health,
		Chain: middleware.Chain(
			middleware.RequestID(),
			middleware.Recovery(logger),
			cors,
			middleware.Auth(sessions),
			middleware.Logger(logger),
		),
	}
	if cfg.Auth.LoginRateLimit > 0 {
		deps.LoginLimit = limiter.Limit(cfg.Auth.LoginRateLimit)
	}

	return rest.NewRouter(deps), nil
}
