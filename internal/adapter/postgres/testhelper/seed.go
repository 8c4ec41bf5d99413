package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// uniqueTelegramID returns a Telegram id unlikely to collide between parallel tests.
func uniqueTelegramID() int64 {
	return int64(uuid.New().ID()) + 1
}

// NewScope returns a fresh private scope for the given user so that tests
// never see each other's rows.
func NewScope(userID uuid.UUID) domain.Scope {
	return domain.Scope{
		ContextID:   "ctx-" + uniqueSuffix(),
		ContextType: domain.ContextTypePrivate,
		UserID:      userID,
	}
}

// SeedUser creates a user row with a random Telegram id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	username := "tester_" + suffix
	firstName := "Test " + suffix
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:         uuid.New(),
		TelegramID: uniqueTelegramID(),
		Username:   &username,
		FirstName:  &firstName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, telegram_id, username, first_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.TelegramID, user.Username, user.FirstName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedParticipant inserts a participant into the scope.
func SeedParticipant(t *testing.T, pool *pgxpool.Pool, scope domain.Scope, name string) domain.Participant {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Participant{
		ID:        uuid.New(),
		ContextID: scope.ContextID,
		Name:      name,
		Color:     domain.RandomColor(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO participants (id, context_id, context_type, user_id, name, color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.ContextID, string(scope.ContextType), scope.UserID, p.Name, p.Color, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedParticipant: %v", err)
	}

	return p
}

// SeedGame inserts a game with its participant links into the scope.
func SeedGame(t *testing.T, pool *pgxpool.Pool, scope domain.Scope, name string, date time.Time, winnerID uuid.UUID, participantIDs ...uuid.UUID) domain.Game {
	t.Helper()
	ctx := context.Background()

	g := domain.Game{
		ID:             uuid.New(),
		ContextID:      scope.ContextID,
		Name:           name,
		Date:           date.UTC().Truncate(time.Microsecond),
		WinnerID:       winnerID,
		ParticipantIDs: participantIDs,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO games (id, context_id, context_type, user_id, name, date, winner_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.ID, g.ContextID, string(scope.ContextType), scope.UserID, g.Name, g.Date, g.WinnerID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGame insert game: %v", err)
	}

	for i, pid := range participantIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO game_participants (game_id, participant_id, context_id, position)
			 VALUES ($1, $2, $3, $4)`,
			g.ID, pid, g.ContextID, i,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedGame insert link: %v", err)
		}
	}

	return g
}
