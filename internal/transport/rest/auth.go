package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/scorekeeper-backend/internal/auth"
	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

// initDataVerifier checks Telegram Mini App launch data.
type initDataVerifier interface {
	Verify(raw string) (*auth.PlatformIdentity, error)
}

// sessionIssuer signs session tokens for a verified identity.
type sessionIssuer interface {
	Issue(identity *auth.PlatformIdentity) (string, time.Time, error)
}

// sessionResolver resolves the context and user of a request.
type sessionResolver interface {
	Session(ctx context.Context) domain.Session
}

// backendReporter reports the backend a request is routed to.
type backendReporter interface {
	Backend(ctx context.Context) domain.Backend
}

// AuthHandler serves login and session endpoints.
type AuthHandler struct {
	verifier initDataVerifier
	issuer   sessionIssuer
	sessions sessionResolver
	backends backendReporter
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler. verifier may be nil when no bot
// token is configured; login then answers 503.
func NewAuthHandler(verifier initDataVerifier, issuer sessionIssuer, sessions sessionResolver, backends backendReporter, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		verifier: verifier,
		issuer:   issuer,
		sessions: sessions,
		backends: backends,
		log:      logger.With("handler", "auth"),
	}
}

type telegramLoginRequest struct {
	InitData string `json:"initData"`
}

type loginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Session   sessionResponse `json:"session"`
}

type sessionResponse struct {
	Context contextResponse `json:"context"`
	User    *userResponse   `json:"user"`
	Backend string          `json:"backend"`
}

type contextResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type userResponse struct {
	ID          string `json:"id"`
	TelegramID  int64  `json:"telegramId"`
	DisplayName string `json:"displayName"`
}

// TelegramLogin handles POST /auth/telegram. It exchanges signed initData
// for a session token.
func (h *AuthHandler) TelegramLogin(w http.ResponseWriter, r *http.Request) {
	if h.verifier == nil {
		writeError(w, http.StatusServiceUnavailable, "telegram login is not configured")
		return
	}

	var req telegramLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	identity, err := h.verifier.Verify(req.InitData)
	if err != nil {
		h.handleVerifyError(w, r, err)
		return
	}
	if identity.User == nil {
		writeError(w, http.StatusBadRequest, "initData carries no user")
		return
	}

	token, expiresAt, err := h.issuer.Issue(identity)
	if err != nil {
		h.log.ErrorContext(r.Context(), "issue session", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	ctx := auth.WithIdentity(r.Context(), identity)
	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   h.session(ctx),
	})
}

// Session handles GET /session: the context, user and backend the caller
// is routed to.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session(r.Context()))
}

func (h *AuthHandler) session(ctx context.Context) sessionResponse {
	s := h.sessions.Session(ctx)
	resp := sessionResponse{
		Context: contextResponse{ID: s.Context.ID, Type: s.Context.Type.String()},
		Backend: h.backends.Backend(ctx).String(),
	}
	if s.User != nil {
		resp.User = &userResponse{
			ID:          s.User.ID.String(),
			TelegramID:  s.User.TelegramID,
			DisplayName: s.User.DisplayName(),
		}
	}
	return resp
}

func (h *AuthHandler) handleVerifyError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrInitDataMissing):
		writeError(w, http.StatusBadRequest, "initData is required")
	case errors.Is(err, auth.ErrInitDataSignature), errors.Is(err, auth.ErrInitDataExpired):
		h.log.WarnContext(r.Context(), "rejected initData", slog.String("error", err.Error()))
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		writeError(w, http.StatusBadRequest, "invalid initData")
	}
}
