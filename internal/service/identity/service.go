package identity

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/scorekeeper-backend/internal/auth"
	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// userRepo defines the user repository interface needed by identity service.
type userRepo interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// Service maps the platform identity of the current request to a users row.
// Resolved users are kept in a bounded LRU keyed by Telegram id.
type Service struct {
	log   *slog.Logger
	users userRepo
	cache *lru.Cache[int64, *domain.User]
}

// NewService creates a new identity service. users may be nil when the
// remote backend is not configured; CurrentUser then always returns nil.
func NewService(logger *slog.Logger, users userRepo, cacheSize int) (*Service, error) {
	cache, err := lru.New[int64, *domain.User](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{
		log:   logger.With("service", "identity"),
		users: users,
		cache: cache,
	}, nil
}

// CurrentUser returns the users row for the platform user attached to ctx,
// creating it on first sight. It never fails: lookup errors are logged and
// reported as nil so the caller falls back to the local backend.
func (s *Service) CurrentUser(ctx context.Context) *domain.User {
	id := auth.IdentityFromCtx(ctx)
	if id == nil || id.User == nil || id.User.ID == 0 {
		return nil
	}
	tgID := id.User.ID

	if u, ok := s.cache.Get(tgID); ok {
		return u
	}
	if s.users == nil {
		return nil
	}

	u, err := s.users.GetByTelegramID(ctx, tgID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		u, err = s.create(ctx, id.User)
		if err != nil {
			s.log.ErrorContext(ctx, "create user",
				slog.Int64("telegram_id", tgID),
				slog.String("error", err.Error()))
			return nil
		}
	default:
		s.log.ErrorContext(ctx, "lookup user",
			slog.Int64("telegram_id", tgID),
			slog.String("error", err.Error()))
		return nil
	}

	s.cache.Add(tgID, u)
	return u
}

func (s *Service) create(ctx context.Context, tg *auth.TelegramUser) (*domain.User, error) {
	firstName := tg.FirstName
	if firstName == "" {
		firstName = domain.DefaultFirstName
	}
	u, err := s.users.Create(ctx, &domain.User{
		ID:         uuid.New(),
		TelegramID: tg.ID,
		Username:   optional(tg.Username),
		FirstName:  &firstName,
		LastName:   optional(tg.LastName),
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost a race with a concurrent first login.
		return s.users.GetByTelegramID(ctx, tg.ID)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("telegram_id", tg.ID),
		slog.String("user_id", u.ID.String()))
	return u, nil
}

// Session builds the per-call session: the resolved context plus the remote
// user, if any.
func (s *Service) Session(ctx context.Context) domain.Session {
	return domain.Session{
		Context: auth.ResolveContext(auth.IdentityFromCtx(ctx)),
		User:    s.CurrentUser(ctx),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
