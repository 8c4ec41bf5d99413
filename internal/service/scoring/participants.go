package scoring

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// ParticipantResult is the outcome of a participant write. Participant is
// nil when the write did not happen; Color tells whether the requested
// color was kept or replaced.
type ParticipantResult struct {
	Participant *domain.Participant
	Color       domain.ColorCheck
}

// OK reports whether the participant was written.
func (r ParticipantResult) OK() bool { return r.Participant != nil }

// ListParticipants returns the participants of the current scope. Failures
// yield an empty slice.
func (s *Service) ListParticipants(ctx context.Context) []domain.Participant {
	r := s.resolve(ctx)
	return s.listParticipants(ctx, r)
}

func (s *Service) listParticipants(ctx context.Context, r route) []domain.Participant {
	list, err := r.stores.Participants.List(ctx, r.scope)
	if err != nil {
		s.logFailure(ctx, r, "list participants", err)
		return []domain.Participant{}
	}
	if list == nil {
		return []domain.Participant{}
	}
	return list
}

// FindParticipant returns the participant or nil when it does not exist in
// the current scope.
func (s *Service) FindParticipant(ctx context.Context, id uuid.UUID) *domain.Participant {
	r := s.resolve(ctx)
	p, err := r.stores.Participants.GetByID(ctx, r.scope, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logFailure(ctx, r, "find participant", err, slog.String("participant_id", id.String()))
		}
		return nil
	}
	return p
}

// CreateParticipant stores a new participant with a trimmed name and a
// normalized color.
func (s *Service) CreateParticipant(ctx context.Context, input CreateParticipantInput) ParticipantResult {
	color := domain.CheckColor(input.Color)
	res := ParticipantResult{Color: color}

	r := s.resolve(ctx)
	if err := input.Validate(); err != nil {
		s.logFailure(ctx, r, "create participant", err)
		return res
	}

	p, err := r.stores.Participants.Create(ctx, r.scope, domain.Participant{
		Name:  domain.NormalizeName(input.Name),
		Color: color.Color,
	})
	if err != nil {
		s.logFailure(ctx, r, "create participant", err)
		return res
	}

	if color.Corrected() {
		s.log.InfoContext(ctx, "participant color replaced",
			slog.String("participant_id", p.ID.String()),
			slog.String("original", color.Original),
			slog.String("color", color.Color))
	}

	res.Participant = p
	return res
}

// UpdateParticipant applies the provided fields. The result is not OK when
// the participant does not exist in the current scope.
func (s *Service) UpdateParticipant(ctx context.Context, input UpdateParticipantInput) ParticipantResult {
	var res ParticipantResult
	upd := domain.ParticipantUpdate{}

	if input.Name != nil {
		name := domain.NormalizeName(*input.Name)
		upd.Name = &name
	}
	if input.Color != nil {
		res.Color = domain.CheckColor(*input.Color)
		upd.Color = &res.Color.Color
	}

	r := s.resolve(ctx)
	if err := input.Validate(); err != nil {
		s.logFailure(ctx, r, "update participant", err)
		return res
	}

	p, err := r.stores.Participants.Update(ctx, r.scope, input.ID, upd)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logFailure(ctx, r, "update participant", err, slog.String("participant_id", input.ID.String()))
		}
		return res
	}

	res.Participant = p
	return res
}

// DeleteParticipant removes a participant. Games that reference it are
// kept. Returns false when the participant does not exist or the delete
// failed.
func (s *Service) DeleteParticipant(ctx context.Context, id uuid.UUID) bool {
	r := s.resolve(ctx)
	if err := r.stores.Participants.Delete(ctx, r.scope, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logFailure(ctx, r, "delete participant", err, slog.String("participant_id", id.String()))
		}
		return false
	}
	return true
}
