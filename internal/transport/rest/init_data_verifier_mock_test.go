package rest

import (
	"sync"

	"github.com/heartmarshall/scorekeeper-backend/internal/auth"
)

var _ initDataVerifier = &initDataVerifierMock{}

type initDataVerifierMock struct {
	VerifyFunc func(raw string) (*auth.PlatformIdentity, error)

	calls struct {
		Verify []struct {
			Raw string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *initDataVerifierMock) Verify(raw string) (*auth.PlatformIdentity, error) {
	if mock.VerifyFunc == nil {
		panic("initDataVerifierMock.VerifyFunc: method is nil but initDataVerifier.Verify was just called")
	}
	callInfo := struct {
		Raw string
	}{Raw: raw}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(raw)
}

func (mock *initDataVerifierMock) VerifyCalls() []struct {
	Raw string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
