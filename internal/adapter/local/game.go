package local

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

type gameRecord struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Date         time.Time   `json:"date"`
	WinnerID     uuid.UUID   `json:"winnerId"`
	Participants []uuid.UUID `json:"participants"`
}

func (r gameRecord) toDomain(contextID string) domain.Game {
	return domain.Game{
		ID:             r.ID,
		ContextID:      contextID,
		Name:           r.Name,
		Date:           r.Date,
		WinnerID:       r.WinnerID,
		ParticipantIDs: slices.Clone(r.Participants),
	}
}

// GameStore keeps games as one array per context, in insertion order, plus
// a side registry of every title ever used.
type GameStore struct {
	kv  *KV
	mu  sync.Mutex
	now func() time.Time
}

// NewGameStore creates a game store on kv.
func NewGameStore(kv *KV) *GameStore {
	return &GameStore{kv: kv, now: time.Now}
}

func (s *GameStore) load(ctx context.Context, contextID string) ([]gameRecord, error) {
	var records []gameRecord
	if _, err := s.kv.Get(ctx, contextID, KeyGames, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GameStore) loadTitles(ctx context.Context, contextID string) ([]string, error) {
	var titles []string
	if _, err := s.kv.Get(ctx, contextID, KeyGameTitles, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

// List returns all games of the scope in insertion order.
func (s *GameStore) List(ctx context.Context, scope domain.Scope) ([]domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, scope.ContextID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Game, 0, len(records))
	for _, r := range records {
		out = append(out, r.toDomain(scope.ContextID))
	}
	return out, nil
}

// Create appends a game and records its title. When only the title registry
// write fails the game is kept and a *domain.PartialWriteError is returned
// with it.
func (s *GameStore) Create(ctx context.Context, scope domain.Scope, g domain.Game) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, scope.ContextID)
	if err != nil {
		return nil, err
	}

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Date.IsZero() {
		g.Date = s.now().UTC()
	}

	rec := gameRecord{
		ID:           g.ID,
		Name:         g.Name,
		Date:         g.Date,
		WinnerID:     g.WinnerID,
		Participants: slices.Clone(g.ParticipantIDs),
	}
	records = append(records, rec)

	if err := s.kv.Put(ctx, scope.ContextID, KeyGames, records); err != nil {
		return nil, err
	}

	created := rec.toDomain(scope.ContextID)

	if err := s.addTitle(ctx, scope.ContextID, g.Name); err != nil {
		return &created, &domain.PartialWriteError{GameID: g.ID, Step: "title registry", Err: err}
	}

	return &created, nil
}

func (s *GameStore) addTitle(ctx context.Context, contextID, title string) error {
	titles, err := s.loadTitles(ctx, contextID)
	if err != nil {
		return err
	}
	if slices.Contains(titles, title) {
		return nil
	}
	return s.kv.Put(ctx, contextID, KeyGameTitles, append(titles, title))
}

// Titles returns the registered titles of the scope, sorted. Deleting a
// game does not remove its title.
func (s *GameStore) Titles(ctx context.Context, scope domain.Scope) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	titles, err := s.loadTitles(ctx, scope.ContextID)
	if err != nil {
		return nil, err
	}

	if titles == nil {
		titles = []string{}
	}
	slices.Sort(titles)
	return titles, nil
}

// Delete removes a game of the scope.
func (s *GameStore) Delete(ctx context.Context, scope domain.Scope, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, scope.ContextID)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(records, func(r gameRecord) bool { return r.ID == id })
	if i < 0 {
		return fmt.Errorf("game %s: %w", id, domain.ErrNotFound)
	}

	records = slices.Delete(records, i, i+1)

	return s.kv.Put(ctx, scope.ContextID, KeyGames, records)
}
