package domain

import "github.com/google/uuid"

// ParticipantStats is one participant's record over a set of games.
type ParticipantStats struct {
	ParticipantID   uuid.UUID
	ParticipantName string
	Color           string
	TotalGames      int
	Wins            int
	WinPercentage   int
}

// TitleStats aggregates all games sharing a name.
type TitleStats struct {
	GameName     string
	GamesCount   int
	Participants []ParticipantStats
}
