package scoring

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// CreateGameResult is the outcome of CreateGame. Game is set for Created
// and PartiallyCreated; Detail describes what went wrong otherwise.
type CreateGameResult struct {
	Outcome domain.CreateOutcome
	Game    *domain.Game
	Detail  string
}

// ListGames returns the games of the current scope in store order: newest
// first for the remote backend, insertion order for the local one.
func (s *Service) ListGames(ctx context.Context) []domain.Game {
	return s.listGames(ctx, s.resolve(ctx))
}

func (s *Service) listGames(ctx context.Context, r route) []domain.Game {
	list, err := r.stores.Games.List(ctx, r.scope)
	if err != nil {
		s.logFailure(ctx, r, "list games", err)
		return []domain.Game{}
	}
	if list == nil {
		return []domain.Game{}
	}
	return list
}

// CreateGame validates the input against the current scope and stores the
// game. A partially written game is reported as PartiallyCreated; callers
// should re-fetch in that case.
func (s *Service) CreateGame(ctx context.Context, input CreateGameInput) CreateGameResult {
	r := s.resolve(ctx)

	if err := input.Validate(); err != nil {
		s.logFailure(ctx, r, "create game", err)
		return CreateGameResult{Outcome: domain.OutcomeFailed, Detail: err.Error()}
	}

	g := input.game()
	if err := s.checkParticipants(ctx, r, g.ParticipantIDs); err != nil {
		s.logFailure(ctx, r, "create game", err)
		return CreateGameResult{Outcome: domain.OutcomeFailed, Detail: err.Error()}
	}

	return s.createGame(ctx, r, g)
}

func (s *Service) createGame(ctx context.Context, r route, g domain.Game) CreateGameResult {
	created, err := r.stores.Games.Create(ctx, r.scope, g)

	var partial *domain.PartialWriteError
	switch {
	case err == nil:
		return CreateGameResult{Outcome: domain.OutcomeCreated, Game: created}
	case errors.As(err, &partial) && created != nil:
		s.log.WarnContext(ctx, "game partially created",
			slog.String("backend", r.backend.String()),
			slog.String("game_id", partial.GameID.String()),
			slog.String("step", partial.Step),
			slog.String("error", err.Error()))
		return CreateGameResult{Outcome: domain.OutcomePartiallyCreated, Game: created, Detail: err.Error()}
	default:
		s.logFailure(ctx, r, "create game", err, slog.String("name", g.Name))
		return CreateGameResult{Outcome: domain.OutcomeFailed, Detail: err.Error()}
	}
}

// checkParticipants rejects ids that do not name a participant of the scope.
func (s *Service) checkParticipants(ctx context.Context, r route, ids []uuid.UUID) error {
	list, err := r.stores.Participants.List(ctx, r.scope)
	if err != nil {
		return err
	}

	known := make(map[uuid.UUID]struct{}, len(list))
	for _, p := range list {
		known[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return domain.NewValidationError("participant_ids", "unknown participant "+id.String())
		}
	}
	return nil
}

// GameTitles returns the distinct game names of the current scope, sorted.
func (s *Service) GameTitles(ctx context.Context) []string {
	r := s.resolve(ctx)
	titles, err := r.stores.Games.Titles(ctx, r.scope)
	if err != nil {
		s.logFailure(ctx, r, "list game titles", err)
		return []string{}
	}
	if titles == nil {
		return []string{}
	}
	return titles
}

// DeleteGame removes a game. Returns false when it does not exist or the
// delete failed.
func (s *Service) DeleteGame(ctx context.Context, id uuid.UUID) bool {
	r := s.resolve(ctx)
	if err := r.stores.Games.Delete(ctx, r.scope, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logFailure(ctx, r, "delete game", err, slog.String("game_id", id.String()))
		}
		return false
	}
	return true
}
