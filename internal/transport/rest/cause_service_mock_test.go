package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/cause"
)

var _ causeService = &causeServiceMock{}

type causeServiceMock struct {
	CreateFunc func(ctx context.Context, input cause.CreateInput) (*domain.Cause, error)
	DeleteFunc func(ctx context.Context, ids []uuid.UUID) (int64, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Cause, error)
	ListFunc   func(ctx context.Context, input cause.ListInput) (domain.Page[domain.Cause], error)
	UpdateFunc func(ctx context.Context, input cause.UpdateInput) (*domain.Cause, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input cause.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input cause.ListInput
		}
		Update []struct {
			Ctx   context.Context
			Input cause.UpdateInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *causeServiceMock) Create(ctx context.Context, input cause.CreateInput) (*domain.Cause, error) {
	if mock.CreateFunc == nil {
		panic("causeServiceMock.CreateFunc: method is nil but causeService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cause.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *causeServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input cause.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *causeServiceMock) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if mock.DeleteFunc == nil {
		panic("causeServiceMock.DeleteFunc: method is nil but causeService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ids)
}

func (mock *causeServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *causeServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Cause, error) {
	if mock.GetFunc == nil {
		panic("causeServiceMock.GetFunc: method is nil but causeService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *causeServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *causeServiceMock) List(ctx context.Context, input cause.ListInput) (domain.Page[domain.Cause], error) {
	if mock.ListFunc == nil {
		panic("causeServiceMock.ListFunc: method is nil but causeService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cause.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *causeServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input cause.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *causeServiceMock) Update(ctx context.Context, input cause.UpdateInput) (*domain.Cause, error) {
	if mock.UpdateFunc == nil {
		panic("causeServiceMock.UpdateFunc: method is nil but causeService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cause.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *causeServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input cause.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
