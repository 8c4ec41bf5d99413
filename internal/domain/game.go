package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Game is one recorded result: a title, the players who took part and the winner.
type Game struct {
	ID             uuid.UUID
	ContextID      string
	Name           string
	Date           time.Time
	WinnerID       uuid.UUID
	ParticipantIDs []uuid.UUID
}

// HasParticipant reports whether id took part in the game.
func (g *Game) HasParticipant(id uuid.UUID) bool {
	return slices.Contains(g.ParticipantIDs, id)
}

// DedupeIDs removes duplicate ids while keeping first-seen order.
func DedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
