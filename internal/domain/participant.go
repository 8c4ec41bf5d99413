package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a player tracked within one context.
type Participant struct {
	ID        uuid.UUID
	ContextID string
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParticipantUpdate carries a partial update. Nil fields are left untouched.
// Color, when set, has already been through CheckColor.
type ParticipantUpdate struct {
	Name  *string
	Color *string
}

// IsEmpty reports whether the update changes nothing.
func (u ParticipantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Color == nil
}

// Apply returns a copy of p with the update applied.
func (u ParticipantUpdate) Apply(p Participant) Participant {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Color != nil {
		p.Color = *u.Color
	}
	return p
}
