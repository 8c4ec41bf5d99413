package scoring

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// CreateParticipantInput holds parameters for participant creation.
// Color is optional; anything that is not a hex color is replaced.
type CreateParticipantInput struct {
	Name  string
	Color string
}

// Validate validates the create participant input.
func (i CreateParticipantInput) Validate() error {
	var errs []domain.FieldError
	errs = validateParticipantName(errs, i.Name)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateParticipantInput holds parameters for participant update.
// All fields except ID are optional (nil = don't change).
type UpdateParticipantInput struct {
	ID    uuid.UUID
	Name  *string
	Color *string
}

// Validate validates the update participant input.
func (i UpdateParticipantInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateParticipantName(errs, *i.Name)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateParticipantName(errs []domain.FieldError, name string) []domain.FieldError {
	name = domain.NormalizeName(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if domain.NameLen(name) > domain.MaxParticipantNameLen {
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}

// CreateGameInput holds parameters for game creation. Duplicate
// participant ids are collapsed; a zero Date means now.
type CreateGameInput struct {
	Name           string
	WinnerID       uuid.UUID
	ParticipantIDs []uuid.UUID
	Date           time.Time
}

// Validate validates the create game input. It does not check that the
// participants exist; the service does that against the selected backend.
func (i CreateGameInput) Validate() error {
	var errs []domain.FieldError

	name := domain.NormalizeName(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if domain.NameLen(name) > domain.MaxGameNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	ids := domain.DedupeIDs(i.ParticipantIDs)
	if len(ids) == 0 {
		errs = append(errs, domain.FieldError{Field: "participant_ids", Message: "at least one participant required"})
	}
	for _, id := range ids {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "participant_ids", Message: "contains empty id"})
			break
		}
	}

	if i.WinnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "winner_id", Message: "required"})
	} else if len(ids) > 0 && !slices.Contains(ids, i.WinnerID) {
		errs = append(errs, domain.FieldError{Field: "winner_id", Message: "must be one of participant_ids"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateGameInput) game() domain.Game {
	return domain.Game{
		Name:           domain.NormalizeName(i.Name),
		WinnerID:       i.WinnerID,
		ParticipantIDs: domain.DedupeIDs(i.ParticipantIDs),
		Date:           i.Date,
	}
}
