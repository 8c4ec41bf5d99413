package scoring

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

var _ gameStore = &gameStoreMock{}

type gameStoreMock struct {
	ListFunc   func(ctx context.Context, scope domain.Scope) ([]domain.Game, error)
	CreateFunc func(ctx context.Context, scope domain.Scope, g domain.Game) (*domain.Game, error)
	TitlesFunc func(ctx context.Context, scope domain.Scope) ([]string, error)
	DeleteFunc func(ctx context.Context, scope domain.Scope, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx   context.Context
			Scope domain.Scope
		}
		Create []struct {
			Ctx   context.Context
			Scope domain.Scope
			G     domain.Game
		}
		Titles []struct {
			Ctx   context.Context
			Scope domain.Scope
		}
		Delete []struct {
			Ctx   context.Context
			Scope domain.Scope
			ID    uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockTitles sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *gameStoreMock) List(ctx context.Context, scope domain.Scope) ([]domain.Game, error) {
	if mock.ListFunc == nil {
		panic("gameStoreMock.ListFunc: method is nil but gameStore.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
	}{Ctx: ctx, Scope: scope}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope)
}

func (mock *gameStoreMock) ListCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *gameStoreMock) Create(ctx context.Context, scope domain.Scope, g domain.Game) (*domain.Game, error) {
	if mock.CreateFunc == nil {
		panic("gameStoreMock.CreateFunc: method is nil but gameStore.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
		G     domain.Game
	}{Ctx: ctx, Scope: scope, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, scope, g)
}

func (mock *gameStoreMock) CreateCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	G     domain.Game
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *gameStoreMock) Titles(ctx context.Context, scope domain.Scope) ([]string, error) {
	if mock.TitlesFunc == nil {
		panic("gameStoreMock.TitlesFunc: method is nil but gameStore.Titles was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
	}{Ctx: ctx, Scope: scope}
	mock.lockTitles.Lock()
	mock.calls.Titles = append(mock.calls.Titles, callInfo)
	mock.lockTitles.Unlock()
	return mock.TitlesFunc(ctx, scope)
}

func (mock *gameStoreMock) TitlesCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
} {
	mock.lockTitles.RLock()
	calls := mock.calls.Titles
	mock.lockTitles.RUnlock()
	return calls
}

func (mock *gameStoreMock) Delete(ctx context.Context, scope domain.Scope, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("gameStoreMock.DeleteFunc: method is nil but gameStore.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
		ID    uuid.UUID
	}{Ctx: ctx, Scope: scope, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, scope, id)
}

func (mock *gameStoreMock) DeleteCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	ID    uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
