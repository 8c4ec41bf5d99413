package scoring

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// Reasons a migration did not run.
const (
	SkipRemoteNotConfigured = "remote not configured"
	SkipNoUser              = "no user"
	SkipRemoteUnavailable   = "remote unavailable"
	SkipRemoteHasData       = "remote already has data"
	SkipLocalUnavailable    = "local unavailable"
	SkipLocalEmpty          = "nothing to migrate"
)

// MigrationReport describes one migration attempt.
type MigrationReport struct {
	Migrated bool
	Skipped  string

	ParticipantsCopied int
	ParticipantsFailed int

	GamesCopied  int
	GamesPartial int
	GamesSkipped int
	GamesFailed  int
}

// Migrate copies the local data of the current scope into the remote
// backend. It returns true once the copy phase ran, even if single records
// failed.
func (s *Service) Migrate(ctx context.Context) bool {
	return s.MigrateWithReport(ctx).Migrated
}

// MigrateWithReport is Migrate with per-record counts.
func (s *Service) MigrateWithReport(ctx context.Context) MigrationReport {
	if s.remote == nil {
		return MigrationReport{Skipped: SkipRemoteNotConfigured}
	}

	sess := s.sessions.Session(ctx)
	if !sess.HasUser() {
		return MigrationReport{Skipped: SkipNoUser}
	}

	remote := route{backend: domain.BackendRemote, stores: *s.remote, scope: sess.RemoteScope()}
	local := route{backend: domain.BackendLocal, stores: s.local, scope: sess.LocalScope()}

	if skip := s.remoteHasData(ctx, remote); skip != "" {
		return MigrationReport{Skipped: skip}
	}

	participants, err := local.stores.Participants.List(ctx, local.scope)
	if err != nil {
		s.logFailure(ctx, local, "migrate: list participants", err)
		return MigrationReport{Skipped: SkipLocalUnavailable}
	}
	games, err := local.stores.Games.List(ctx, local.scope)
	if err != nil {
		s.logFailure(ctx, local, "migrate: list games", err)
		return MigrationReport{Skipped: SkipLocalUnavailable}
	}
	if len(participants) == 0 && len(games) == 0 {
		return MigrationReport{Skipped: SkipLocalEmpty}
	}

	report := MigrationReport{Migrated: true}
	ids := make(map[uuid.UUID]uuid.UUID, len(participants))

	for _, p := range participants {
		created, err := remote.stores.Participants.Create(ctx, remote.scope, domain.Participant{
			Name:  p.Name,
			Color: p.Color,
		})
		if err != nil {
			report.ParticipantsFailed++
			s.logFailure(ctx, remote, "migrate participant", err, slog.String("participant_id", p.ID.String()))
			continue
		}
		ids[p.ID] = created.ID
		report.ParticipantsCopied++
	}

	for _, g := range games {
		mapped, ok := remapGame(g, ids)
		if !ok {
			report.GamesSkipped++
			s.log.WarnContext(ctx, "migrate game skipped",
				slog.String("game_id", g.ID.String()),
				slog.String("name", g.Name))
			continue
		}

		_, err := remote.stores.Games.Create(ctx, remote.scope, mapped)
		var partial *domain.PartialWriteError
		switch {
		case err == nil:
			report.GamesCopied++
		case errors.As(err, &partial):
			report.GamesPartial++
			s.logFailure(ctx, remote, "migrate game links", err, slog.String("game_id", g.ID.String()))
		default:
			report.GamesFailed++
			s.logFailure(ctx, remote, "migrate game", err, slog.String("game_id", g.ID.String()))
		}
	}

	s.log.InfoContext(ctx, "local data migrated",
		slog.String("context_id", remote.scope.ContextID),
		slog.String("user_id", remote.scope.UserID.String()),
		slog.Int("participants_copied", report.ParticipantsCopied),
		slog.Int("participants_failed", report.ParticipantsFailed),
		slog.Int("games_copied", report.GamesCopied),
		slog.Int("games_partial", report.GamesPartial),
		slog.Int("games_skipped", report.GamesSkipped),
		slog.Int("games_failed", report.GamesFailed))

	return report
}

// remoteHasData reports a skip reason when the remote scope is not empty
// or cannot be read. Games are checked too: a scope with games but no
// participants counts as migrated.
func (s *Service) remoteHasData(ctx context.Context, remote route) string {
	participants, err := remote.stores.Participants.List(ctx, remote.scope)
	if err != nil {
		s.logFailure(ctx, remote, "migrate: list remote participants", err)
		return SkipRemoteUnavailable
	}
	if len(participants) > 0 {
		return SkipRemoteHasData
	}

	games, err := remote.stores.Games.List(ctx, remote.scope)
	if err != nil {
		s.logFailure(ctx, remote, "migrate: list remote games", err)
		return SkipRemoteUnavailable
	}
	if len(games) > 0 {
		return SkipRemoteHasData
	}
	return ""
}

// remapGame translates participant ids through ids. Unmapped participants
// are dropped; the game is rejected when the winner is lost or nobody is
// left.
func remapGame(g domain.Game, ids map[uuid.UUID]uuid.UUID) (domain.Game, bool) {
	winner, ok := ids[g.WinnerID]
	if !ok {
		return domain.Game{}, false
	}

	participants := make([]uuid.UUID, 0, len(g.ParticipantIDs))
	for _, id := range g.ParticipantIDs {
		if mapped, ok := ids[id]; ok {
			participants = append(participants, mapped)
		}
	}
	participants = domain.DedupeIDs(participants)
	if len(participants) == 0 || !slices.Contains(participants, winner) {
		return domain.Game{}, false
	}

	return domain.Game{
		Name:           g.Name,
		Date:           g.Date,
		WinnerID:       winner,
		ParticipantIDs: participants,
	}, true
}
