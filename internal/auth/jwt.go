package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionManager issues and validates session tokens that carry the
// verified platform identity between requests.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionManager creates a new session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret string, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// sessionClaims extends standard JWT claims with the platform identity.
type sessionClaims struct {
	jwt.RegisteredClaims
	User *TelegramUser `json:"tg_user,omitempty"`
	Chat *TelegramChat `json:"tg_chat,omitempty"`
}

// Issue creates a signed HS256 JWT for the identity. The subject is the
// Telegram user id when one is present.
func (m *SessionManager) Issue(identity *PlatformIdentity) (string, time.Time, error) {
	if identity == nil {
		return "", time.Time{}, fmt.Errorf("identity is nil")
	}

	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		User: identity.User,
		Chat: identity.Chat,
	}
	if identity.User != nil {
		claims.Subject = strconv.FormatInt(identity.User.ID, 10)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate parses and validates a session token and returns the identity it carries.
func (m *SessionManager) Validate(tokenString string) (*PlatformIdentity, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return nil, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	if claims.User != nil && claims.Subject != strconv.FormatInt(claims.User.ID, 10) {
		return nil, fmt.Errorf("subject does not match user")
	}

	return &PlatformIdentity{User: claims.User, Chat: claims.Chat}, nil
}
