package rest

import (
	"sync"
	"time"

	"github.com/heartmarshall/scorekeeper-backend/internal/auth"
)

var _ sessionIssuer = &sessionIssuerMock{}

type sessionIssuerMock struct {
	IssueFunc func(identity *auth.PlatformIdentity) (string, time.Time, error)

	calls struct {
		Issue []struct {
			Identity *auth.PlatformIdentity
		}
	}
	lockIssue sync.RWMutex
}

func (mock *sessionIssuerMock) Issue(identity *auth.PlatformIdentity) (string, time.Time, error) {
	if mock.IssueFunc == nil {
		panic("sessionIssuerMock.IssueFunc: method is nil but sessionIssuer.Issue was just called")
	}
	callInfo := struct {
		Identity *auth.PlatformIdentity
	}{Identity: identity}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(identity)
}

func (mock *sessionIssuerMock) IssueCalls() []struct {
	Identity *auth.PlatformIdentity
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}
