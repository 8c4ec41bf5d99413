package scoring

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

var _ participantStore = &participantStoreMock{}

type participantStoreMock struct {
	ListFunc    func(ctx context.Context, scope domain.Scope) ([]domain.Participant, error)
	GetByIDFunc func(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.Participant, error)
	CreateFunc  func(ctx context.Context, scope domain.Scope, p domain.Participant) (*domain.Participant, error)
	UpdateFunc  func(ctx context.Context, scope domain.Scope, id uuid.UUID, upd domain.ParticipantUpdate) (*domain.Participant, error)
	DeleteFunc  func(ctx context.Context, scope domain.Scope, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx   context.Context
			Scope domain.Scope
		}
		GetByID []struct {
			Ctx   context.Context
			Scope domain.Scope
			ID    uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Scope domain.Scope
			P     domain.Participant
		}
		Update []struct {
			Ctx   context.Context
			Scope domain.Scope
			ID    uuid.UUID
			Upd   domain.ParticipantUpdate
		}
		Delete []struct {
			Ctx   context.Context
			Scope domain.Scope
			ID    uuid.UUID
		}
	}
	lockList    sync.RWMutex
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *participantStoreMock) List(ctx context.Context, scope domain.Scope) ([]domain.Participant, error) {
	if mock.ListFunc == nil {
		panic("participantStoreMock.ListFunc: method is nil but participantStore.List was just called")
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

func (mock *participantStoreMock) ListCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *participantStoreMock) GetByID(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.Participant, error) {
	if mock.GetByIDFunc == nil {
		panic("participantStoreMock.GetByIDFunc: method is nil but participantStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
		ID    uuid.UUID
	}{Ctx: ctx, Scope: scope, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, scope, id)
}

func (mock *participantStoreMock) GetByIDCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	ID    uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *participantStoreMock) Create(ctx context.Context, scope domain.Scope, p domain.Participant) (*domain.Participant, error) {
	if mock.CreateFunc == nil {
		panic("participantStoreMock.CreateFunc: method is nil but participantStore.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
		P     domain.Participant
	}{Ctx: ctx, Scope: scope, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, scope, p)
}

func (mock *participantStoreMock) CreateCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	P     domain.Participant
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *participantStoreMock) Update(ctx context.Context, scope domain.Scope, id uuid.UUID, upd domain.ParticipantUpdate) (*domain.Participant, error) {
	if mock.UpdateFunc == nil {
		panic("participantStoreMock.UpdateFunc: method is nil but participantStore.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.Scope
		ID    uuid.UUID
		Upd   domain.ParticipantUpdate
	}{Ctx: ctx, Scope: scope, ID: id, Upd: upd}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, scope, id, upd)
}

func (mock *participantStoreMock) UpdateCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	ID    uuid.UUID
	Upd   domain.ParticipantUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *participantStoreMock) Delete(ctx context.Context, scope domain.Scope, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("participantStoreMock.DeleteFunc: method is nil but participantStore.Delete was just called")
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

func (mock *participantStoreMock) DeleteCalls() []struct {
	Ctx   context.Context
	Scope domain.Scope
	ID    uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
