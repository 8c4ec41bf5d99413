package domain

import "github.com/google/uuid"

// DefaultContextID scopes data when no platform identity is available.
const DefaultContextID = "default"

// Context is the tenant key: a private user or a group chat.
type Context struct {
	ID   string
	Type ContextType
}

// DefaultContext is used when the platform supplies no identity at all.
func DefaultContext() Context {
	return Context{ID: DefaultContextID, Type: ContextTypePrivate}
}

// Scope is what stores filter on. UserID is the remote owner and is
// uuid.Nil for the local backend.
type Scope struct {
	ContextID   string
	ContextType ContextType
	UserID      uuid.UUID
}

// Session is the per-call identity: the resolved context plus the remote
// user when one could be established.
type Session struct {
	Context Context
	User    *User
}

// HasUser reports whether a remote user is attached.
func (s Session) HasUser() bool { return s.User != nil }

// LocalScope is the scope used against the local backend.
func (s Session) LocalScope() Scope {
	return Scope{ContextID: s.Context.ID, ContextType: s.Context.Type}
}

// RemoteScope is the scope used against the remote backend.
// Callers must check HasUser first.
func (s Session) RemoteScope() Scope {
	sc := s.LocalScope()
	if s.User != nil {
		sc.UserID = s.User.ID
	}
	return sc
}
