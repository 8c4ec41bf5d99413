package domain

// ContextType tells whether data belongs to a single user or to a group chat.
type ContextType string

const (
	ContextTypePrivate ContextType = "private"
	ContextTypeGroup   ContextType = "group"
)

func (t ContextType) String() string { return string(t) }

func (t ContextType) IsValid() bool {
	switch t {
	case ContextTypePrivate, ContextTypeGroup:
		return true
	}
	return false
}

// Backend identifies which store served a call.
type Backend string

const (
	BackendLocal  Backend = "local"
	BackendRemote Backend = "remote"
)

func (b Backend) String() string { return string(b) }

// CreateOutcome is the result tag of a multi-step create.
type CreateOutcome string

const (
	OutcomeCreated          CreateOutcome = "CREATED"
	OutcomePartiallyCreated CreateOutcome = "PARTIALLY_CREATED"
	OutcomeFailed           CreateOutcome = "FAILED"
)

func (o CreateOutcome) String() string { return string(o) }
