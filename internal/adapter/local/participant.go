package local

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

type participantRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (r participantRecord) toDomain(contextID string) domain.Participant {
	updated := r.UpdatedAt
	if updated.IsZero() {
		updated = r.CreatedAt
	}
	return domain.Participant{
		ID:        r.ID,
		ContextID: contextID,
		Name:      r.Name,
		Color:     r.Color,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updated,
	}
}

// ParticipantStore keeps participants as one array per context, in
// insertion order.
type ParticipantStore struct {
	kv  *KV
	mu  sync.Mutex
	now func() time.Time
}

// NewParticipantStore creates a participant store on kv.
func NewParticipantStore(kv *KV) *ParticipantStore {
	return &ParticipantStore{kv: kv, now: time.Now}
}

// load reads the collection and assigns a palette color to records stored
// before colors existed. Migrated records are written back immediately.
func (s *ParticipantStore) load(ctx context.Context, contextID string) ([]participantRecord, error) {
	var records []participantRecord
	if _, err := s.kv.Get(ctx, contextID, KeyParticipants, &records); err != nil {
		return nil, err
	}

	migrated := false
	for i := range records {
		if records[i].Color == "" {
			records[i].Color = domain.RandomColor()
			migrated = true
		}
	}

	if migrated {
		if err := s.kv.Put(ctx, contextID, KeyParticipants, records); err != nil {
			return nil, fmt.Errorf("store migrated colors: %w", err)
		}
	}

	return records, nil
}

func (s *ParticipantStore) find(records []participantRecord, id uuid.UUID) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}

// List returns all participants of the scope in insertion order.
func (s *ParticipantStore) List(ctx context.Context, scope domain.Scope) ([]domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, scope.ContextID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Participant, 0, len(records))
	for _, r := range records {
		out = append(out, r.toDomain(scope.ContextID))
	}
	return out, nil
}

// GetByID returns one participant of the scope.
func (s *ParticipantStore) GetByID(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, scope.ContextID)
	if err != nil {
		return nil, err
	}

	i := s.find(records, id)
	if i < 0 {
		return nil, fmt.Errorf("participant %s: %w", id, domain.ErrNotFound)
	}

	p := records[i].toDomain(scope.ContextID)
	return &p, nil
}

// Create appends a participant to the scope. A zero ID is replaced by a fresh one.
func (s *ParticipantStore) Create(ctx context.Context, scope domain.Scope, p domain.Participant) (*domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, scope.ContextID)
	if err != nil {
		return nil, err
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	} else if s.find(records, p.ID) >= 0 {
		return nil, fmt.Errorf("participant %s: %w", p.ID, domain.ErrAlreadyExists)
	}

	now := s.now().UTC()
	rec := participantRecord{ID: p.ID, Name: p.Name, Color: p.Color, CreatedAt: now, UpdatedAt: now}
	records = append(records, rec)

	if err := s.kv.Put(ctx, scope.ContextID, KeyParticipants, records); err != nil {
		return nil, err
	}

	created := rec.toDomain(scope.ContextID)
	return &created, nil
}

// Update applies a partial update to a participant of the scope.
func (s *ParticipantStore) Update(ctx context.Context, scope domain.Scope, id uuid.UUID, upd domain.ParticipantUpdate) (*domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, scope.ContextID)
	if err != nil {
		return nil, err
	}

	i := s.find(records, id)
	if i < 0 {
		return nil, fmt.Errorf("participant %s: %w", id, domain.ErrNotFound)
	}

	if upd.IsEmpty() {
		p := records[i].toDomain(scope.ContextID)
		return &p, nil
	}

	applied := upd.Apply(records[i].toDomain(scope.ContextID))
	records[i].Name = applied.Name
	records[i].Color = applied.Color
	records[i].UpdatedAt = s.now().UTC()

	if err := s.kv.Put(ctx, scope.ContextID, KeyParticipants, records); err != nil {
		return nil, err
	}

	p := records[i].toDomain(scope.ContextID)
	return &p, nil
}

// Delete removes a participant of the scope. Games that reference it are
// left untouched.
func (s *ParticipantStore) Delete(ctx context.Context, scope domain.Scope, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, scope.ContextID)
	if err != nil {
		return err
	}

	i := s.find(records, id)
	if i < 0 {
		return fmt.Errorf("participant %s: %w", id, domain.ErrNotFound)
	}

	records = append(records[:i], records[i+1:]...)

	return s.kv.Put(ctx, scope.ContextID, KeyParticipants, records)
}
