package scoring

import (
	"context"
	"sync"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

var _ sessionSource = &sessionSourceMock{}

type sessionSourceMock struct {
	SessionFunc func(ctx context.Context) domain.Session

	calls struct {
		Session []struct {
			Ctx context.Context
		}
	}
	lockSession sync.RWMutex
}

func (mock *sessionSourceMock) Session(ctx context.Context) domain.Session {
	if mock.SessionFunc == nil {
		panic("sessionSourceMock.SessionFunc: method is nil but sessionSource.Session was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSession.Lock()
	mock.calls.Session = append(mock.calls.Session, callInfo)
	mock.lockSession.Unlock()
	return mock.SessionFunc(ctx)
}

func (mock *sessionSourceMock) SessionCalls() []struct {
	Ctx context.Context
} {
	mock.lockSession.RLock()
	calls := mock.calls.Session
	mock.lockSession.RUnlock()
	return calls
}
