// Package scoring is the storage adapter: it routes every participant and
// game operation to the remote or local backend and converts store errors
// into plain results.
package scoring

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// participantStore defines the participant store interface needed by scoring service.
type participantStore interface {
	List(ctx context.Context, scope domain.Scope) ([]domain.Participant, error)
	GetByID(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.Participant, error)
	Create(ctx context.Context, scope domain.Scope, p domain.Participant) (*domain.Participant, error)
	Update(ctx context.Context, scope domain.Scope, id uuid.UUID, upd domain.ParticipantUpdate) (*domain.Participant, error)
	Delete(ctx context.Context, scope domain.Scope, id uuid.UUID) error
}

// gameStore defines the game store interface needed by scoring service.
type gameStore interface {
	List(ctx context.Context, scope domain.Scope) ([]domain.Game, error)
	Create(ctx context.Context, scope domain.Scope, g domain.Game) (*domain.Game, error)
	Titles(ctx context.Context, scope domain.Scope) ([]string, error)
	Delete(ctx context.Context, scope domain.Scope, id uuid.UUID) error
}

// sessionSource resolves the per-call session (context and optional user).
type sessionSource interface {
	Session(ctx context.Context) domain.Session
}

// Stores is one backend: a participant store and a game store.
type Stores struct {
	Participants participantStore
	Games        gameStore
}

// Service implements the storage adapter.
type Service struct {
	log      *slog.Logger
	sessions sessionSource
	local    Stores
	remote   *Stores
}

// NewService creates a new scoring service. remote is nil when the remote
// backend is not configured.
func NewService(logger *slog.Logger, sessions sessionSource, local Stores, remote *Stores) *Service {
	return &Service{
		log:      logger.With("service", "scoring"),
		sessions: sessions,
		local:    local,
		remote:   remote,
	}
}

// route is the per-call backend choice.
type route struct {
	backend domain.Backend
	stores  Stores
	scope   domain.Scope
}

// resolve picks the remote backend iff it is configured and the current
// call has a user; otherwise the local one.
func (s *Service) resolve(ctx context.Context) route {
	sess := s.sessions.Session(ctx)
	if s.remote != nil && sess.HasUser() {
		return route{backend: domain.BackendRemote, stores: *s.remote, scope: sess.RemoteScope()}
	}
	return route{backend: domain.BackendLocal, stores: s.local, scope: sess.LocalScope()}
}

// Backend reports which backend a call with ctx would use.
func (s *Service) Backend(ctx context.Context) domain.Backend {
	return s.resolve(ctx).backend
}

// RemoteConfigured reports whether remote stores were wired at startup.
func (s *Service) RemoteConfigured() bool {
	return s.remote != nil
}

func (s *Service) logFailure(ctx context.Context, r route, op string, err error, attrs ...any) {
	attrs = append(attrs,
		slog.String("backend", r.backend.String()),
		slog.String("context_id", r.scope.ContextID),
		slog.String("error", err.Error()))
	s.log.ErrorContext(ctx, op+" failed", attrs...)
}
