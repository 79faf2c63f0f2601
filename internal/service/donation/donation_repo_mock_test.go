package donation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	donationrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/donation"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

var _ donationRepo = &donationRepoMock{}

type donationRepoMock struct {
	CountFunc     func(ctx context.Context, f donationrepo.Filter) (int, error)
	GetDetailFunc func(ctx context.Context, id uuid.UUID) (*domain.DonationDetail, error)
	ListFunc      func(ctx context.Context, f donationrepo.Filter) ([]domain.DonationDetail, error)

	calls struct {
		Count []struct {
			Ctx context.Context
			F   donationrepo.Filter
		}
		GetDetail []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   donationrepo.Filter
		}
	}
	lockCount     sync.RWMutex
	lockGetDetail sync.RWMutex
	lockList      sync.RWMutex
}

func (mock *donationRepoMock) Count(ctx context.Context, f donationrepo.Filter) (int, error) {
	if mock.CountFunc == nil {
		panic("donationRepoMock.CountFunc: method is nil but donationRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   donationrepo.Filter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *donationRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   donationrepo.Filter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *donationRepoMock) GetDetail(ctx context.Context, id uuid.UUID) (*domain.DonationDetail, error) {
	if mock.GetDetailFunc == nil {
		panic("donationRepoMock.GetDetailFunc: method is nil but donationRepo.GetDetail was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetDetail.Lock()
	mock.calls.GetDetail = append(mock.calls.GetDetail, callInfo)
	mock.lockGetDetail.Unlock()
	return mock.GetDetailFunc(ctx, id)
}

func (mock *donationRepoMock) GetDetailCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDetail.RLock()
	calls := mock.calls.GetDetail
	mock.lockGetDetail.RUnlock()
	return calls
}

func (mock *donationRepoMock) List(ctx context.Context, f donationrepo.Filter) ([]domain.DonationDetail, error) {
	if mock.ListFunc == nil {
		panic("donationRepoMock.ListFunc: method is nil but donationRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   donationrepo.Filter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *donationRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   donationrepo.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
