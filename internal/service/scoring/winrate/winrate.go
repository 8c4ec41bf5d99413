// Package winrate derives win/loss statistics from participants and games.
// It is pure: no I/O, no clock, deterministic for a given input order.
package winrate

import (
	"math"
	"slices"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// Percentage returns round(wins/total*100), or 0 when total is 0.
//
//	Percentage(1, 3) = 33
//	Percentage(2, 3) = 67
func Percentage(wins, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(total) * 100))
}

// ByParticipant returns one entry per participant, in participant order.
// Participants with no games are included with zero counts. A win counts
// whenever the participant is the recorded winner.
func ByParticipant(participants []domain.Participant, games []domain.Game) []domain.ParticipantStats {
	out := make([]domain.ParticipantStats, 0, len(participants))
	for _, p := range participants {
		out = append(out, statsFor(p, games))
	}
	return out
}

// ByTitle groups games by name. Within a group only participants who played
// at least one game of that title are listed, by win percentage descending.
// Groups are ordered by game count descending; ties keep the order in which
// titles first appear in games.
func ByTitle(participants []domain.Participant, games []domain.Game) []domain.TitleStats {
	var order []string
	groups := make(map[string][]domain.Game)
	for _, g := range games {
		if _, ok := groups[g.Name]; !ok {
			order = append(order, g.Name)
		}
		groups[g.Name] = append(groups[g.Name], g)
	}

	out := make([]domain.TitleStats, 0, len(order))
	for _, name := range order {
		titleGames := groups[name]

		var stats []domain.ParticipantStats
		for _, p := range participants {
			s := statsFor(p, titleGames)
			if s.TotalGames == 0 {
				continue
			}
			stats = append(stats, s)
		}
		SortByWinPercentage(stats)

		out = append(out, domain.TitleStats{
			GameName:     name,
			GamesCount:   len(titleGames),
			Participants: stats,
		})
	}

	slices.SortStableFunc(out, func(a, b domain.TitleStats) int {
		return b.GamesCount - a.GamesCount
	})

	return out
}

// SortByWinPercentage orders stats by win percentage descending, keeping
// the input order for ties.
func SortByWinPercentage(stats []domain.ParticipantStats) {
	slices.SortStableFunc(stats, func(a, b domain.ParticipantStats) int {
		return b.WinPercentage - a.WinPercentage
	})
}

func statsFor(p domain.Participant, games []domain.Game) domain.ParticipantStats {
	var total, wins int
	for i := range games {
		if games[i].HasParticipant(p.ID) {
			total++
		}
		if games[i].WinnerID == p.ID {
			wins++
		}
	}

	return domain.ParticipantStats{
		ParticipantID:   p.ID,
		ParticipantName: p.Name,
		Color:           p.Color,
		TotalGames:      total,
		Wins:            wins,
		WinPercentage:   Percentage(wins, total),
	}
}
