package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultFirstName is stored when the platform supplies no first name.
const DefaultFirstName = "User"

// User is the durable remote record of a Telegram user.
type User struct {
	ID         uuid.UUID
	TelegramID int64
	Username   *string
	FirstName  *string
	LastName   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayName returns "First Last", falling back to @username, then DefaultFirstName.
func (u *User) DisplayName() string {
	var parts []string
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if u.Username != nil && *u.Username != "" {
		return "@" + *u.Username
	}
	return DefaultFirstName
}
