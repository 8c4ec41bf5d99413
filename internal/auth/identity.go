package auth

import (
	"context"
	"strconv"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// TelegramUser is the user object supplied by the Mini App platform.
type TelegramUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// TelegramChat is the chat the Mini App was opened from, if any.
type TelegramChat struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title,omitempty"`
	Username string `json:"username,omitempty"`
}

// PlatformIdentity is the caller identity handed over by the platform.
// Both fields are optional.
type PlatformIdentity struct {
	User *TelegramUser `json:"user,omitempty"`
	Chat *TelegramChat `json:"chat,omitempty"`
}

// ResolveContext maps a platform identity to the tenant context that scopes
// all reads and writes. A group or supergroup chat wins over the user;
// without any identity the shared default context is returned.
func ResolveContext(identity *PlatformIdentity) domain.Context {
	if identity == nil {
		return domain.DefaultContext()
	}

	if chat := identity.Chat; chat != nil && (chat.Type == "group" || chat.Type == "supergroup") {
		return domain.Context{
			ID:   strconv.FormatInt(chat.ID, 10),
			Type: domain.ContextTypeGroup,
		}
	}

	if identity.User != nil {
		return domain.Context{
			ID:   strconv.FormatInt(identity.User.ID, 10),
			Type: domain.ContextTypePrivate,
		}
	}

	return domain.DefaultContext()
}

type identityKey struct{}

// WithIdentity attaches the platform identity to the request context.
func WithIdentity(ctx context.Context, identity *PlatformIdentity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromCtx returns the platform identity of the current request, or nil.
func IdentityFromCtx(ctx context.Context) *PlatformIdentity {
	identity, _ := ctx.Value(identityKey{}).(*PlatformIdentity)
	return identity
}
