package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
	"github.com/heartmarshall/scorekeeper-backend/internal/service/scoring/winrate"
)

// Statistics returns per-participant win statistics for the current scope,
// best win percentage first.
func (s *Service) Statistics(ctx context.Context) []domain.ParticipantStats {
	participants, games, ok := s.loadAll(ctx)
	if !ok {
		return []domain.ParticipantStats{}
	}

	stats := winrate.ByParticipant(participants, games)
	winrate.SortByWinPercentage(stats)
	return stats
}

// StatisticsByGame returns win statistics grouped by game title.
func (s *Service) StatisticsByGame(ctx context.Context) []domain.TitleStats {
	participants, games, ok := s.loadAll(ctx)
	if !ok {
		return []domain.TitleStats{}
	}
	return winrate.ByTitle(participants, games)
}

// loadAll reads participants and games of one backend concurrently. Either
// failing makes the whole load fail.
func (s *Service) loadAll(ctx context.Context) ([]domain.Participant, []domain.Game, bool) {
	r := s.resolve(ctx)

	var (
		participants []domain.Participant
		games        []domain.Game
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participants, err = r.stores.Participants.List(gctx, r.scope)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = r.stores.Games.List(gctx, r.scope)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logFailure(ctx, r, "load statistics", err)
		return nil, nil, false
	}
	return participants, games, true
}
