package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInitDataMissing   = errors.New("init data is empty")
	ErrInitDataSignature = errors.New("init data signature mismatch")
	ErrInitDataExpired   = errors.New("init data expired")
)

// InitDataVerifier checks Mini App launch parameters signed by the platform
// with the bot token.
type InitDataVerifier struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewInitDataVerifier creates a verifier for the given bot token.
// maxAge <= 0 disables the auth_date freshness check.
func NewInitDataVerifier(botToken string, maxAge time.Duration) *InitDataVerifier {
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))

	return &InitDataVerifier{
		secret: mac.Sum(nil),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Verify validates the raw initData query string and returns the identity it carries.
func (v *InitDataVerifier) Verify(raw string) (*PlatformIdentity, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrInitDataMissing
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("parse init data: %w", err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrInitDataSignature
	}

	expected, err := hex.DecodeString(hash)
	if err != nil {
		return nil, ErrInitDataSignature
	}

	if !hmac.Equal(expected, signFields(v.secret, values)) {
		return nil, ErrInitDataSignature
	}

	if v.maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse auth_date: %w", err)
		}
		if v.now().Sub(time.Unix(authDate, 0)) > v.maxAge {
			return nil, ErrInitDataExpired
		}
	}

	identity := &PlatformIdentity{}

	if rawUser := values.Get("user"); rawUser != "" {
		var u TelegramUser
		if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		identity.User = &u
	}

	if rawChat := values.Get("chat"); rawChat != "" {
		var c TelegramChat
		if err := json.Unmarshal([]byte(rawChat), &c); err != nil {
			return nil, fmt.Errorf("decode chat: %w", err)
		}
		identity.Chat = &c
	}

	return identity, nil
}

// signFields computes the HMAC of the data-check string: every field except
// hash, as key=value lines sorted by key.
func signFields(secret []byte, values url.Values) []byte {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strings.Join(lines, "\n")))
	return mac.Sum(nil)
}
