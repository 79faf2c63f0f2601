package cause

import (
	"context"
	"sync"

	"github.com/google/uuid"

	causerepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/cause"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

var _ causeRepo = &causeRepoMock{}

type causeRepoMock struct {
	CountFunc      func(ctx context.Context, f causerepo.Filter) (int, error)
	CreateFunc     func(ctx context.Context, c *domain.Cause) (*domain.Cause, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Cause, error)
	ListFunc       func(ctx context.Context, f causerepo.Filter) ([]domain.Cause, error)
	SoftDeleteFunc func(ctx context.Context, ids []uuid.UUID) (int64, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, p causerepo.UpdateParams) (*domain.Cause, error)

	calls struct {
		Count []struct {
			Ctx context.Context
			F   causerepo.Filter
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Cause
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   causerepo.Filter
		}
		SoftDelete []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   causerepo.UpdateParams
		}
	}
	lockCount      sync.RWMutex
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockSoftDelete sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *causeRepoMock) Count(ctx context.Context, f causerepo.Filter) (int, error) {
	if mock.CountFunc == nil {
		panic("causeRepoMock.CountFunc: method is nil but causeRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   causerepo.Filter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *causeRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   causerepo.Filter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *causeRepoMock) Create(ctx context.Context, c *domain.Cause) (*domain.Cause, error) {
	if mock.CreateFunc == nil {
		panic("causeRepoMock.CreateFunc: method is nil but causeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Cause
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *causeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Cause
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *causeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cause, error) {
	if mock.GetByIDFunc == nil {
		panic("causeRepoMock.GetByIDFunc: method is nil but causeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *causeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *causeRepoMock) List(ctx context.Context, f causerepo.Filter) ([]domain.Cause, error) {
	if mock.ListFunc == nil {
		panic("causeRepoMock.ListFunc: method is nil but causeRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   causerepo.Filter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *causeRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   causerepo.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *causeRepoMock) SoftDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if mock.SoftDeleteFunc == nil {
		panic("causeRepoMock.SoftDeleteFunc: method is nil but causeRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, ids)
}

func (mock *causeRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *causeRepoMock) Update(ctx context.Context, id uuid.UUID, p causerepo.UpdateParams) (*domain.Cause, error) {
	if mock.UpdateFunc == nil {
		panic("causeRepoMock.UpdateFunc: method is nil but causeRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   causerepo.UpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *causeRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   causerepo.UpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
