package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

var _ backendReporter = &backendReporterMock{}

type backendReporterMock struct {
	BackendFunc func(ctx context.Context) domain.Backend

	calls struct {
		Backend []struct {
			Ctx context.Context
		}
	}
	lockBackend sync.RWMutex
}

func (mock *backendReporterMock) Backend(ctx context.Context) domain.Backend {
	if mock.BackendFunc == nil {
		panic("backendReporterMock.BackendFunc: method is nil but backendReporter.Backend was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockBackend.Lock()
	mock.calls.Backend = append(mock.calls.Backend, callInfo)
	mock.lockBackend.Unlock()
	return mock.BackendFunc(ctx)
}

func (mock *backendReporterMock) BackendCalls() []struct {
	Ctx context.Context
} {
	mock.lockBackend.RLock()
	calls := mock.calls.Backend
	mock.lockBackend.RUnlock()
	return calls
}
