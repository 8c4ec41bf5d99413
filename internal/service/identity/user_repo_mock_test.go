package identity

import (
	"context"
	"sync"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByTelegramIDFunc func(ctx context.Context, telegramID int64) (*domain.User, error)
	CreateFunc          func(ctx context.Context, u *domain.User) (*domain.User, error)

	calls struct {
		GetByTelegramID []struct {
			Ctx        context.Context
			TelegramID int64
		}
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
	}
	lockGetByTelegramID sync.RWMutex
	lockCreate          sync.RWMutex
}

func (mock *userRepoMock) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	if mock.GetByTelegramIDFunc == nil {
		panic("userRepoMock.GetByTelegramIDFunc: method is nil but userRepo.GetByTelegramID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		TelegramID int64
	}{Ctx: ctx, TelegramID: telegramID}
	mock.lockGetByTelegramID.Lock()
	mock.calls.GetByTelegramID = append(mock.calls.GetByTelegramID, callInfo)
	mock.lockGetByTelegramID.Unlock()
	return mock.GetByTelegramIDFunc(ctx, telegramID)
}

func (mock *userRepoMock) GetByTelegramIDCalls() []struct {
	Ctx        context.Context
	TelegramID int64
} {
	mock.lockGetByTelegramID.RLock()
	calls := mock.calls.GetByTelegramID
	mock.lockGetByTelegramID.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
