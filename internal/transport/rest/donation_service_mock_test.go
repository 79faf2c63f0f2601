package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/donation"
)

var _ donationService = &donationServiceMock{}

type donationServiceMock struct {
	GetFunc  func(ctx context.Context, id uuid.UUID) (*domain.DonationDetail, error)
	ListFunc func(ctx context.Context, input donation.ListInput) (domain.Page[domain.DonationDetail], error)

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input donation.ListInput
		}
	}
	lockGet  sync.RWMutex
	lockList sync.RWMutex
}

func (mock *donationServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.DonationDetail, error) {
	if mock.GetFunc == nil {
		panic("donationServiceMock.GetFunc: method is nil but donationService.Get was just called")
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

func (mock *donationServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *donationServiceMock) List(ctx context.Context, input donation.ListInput) (domain.Page[domain.DonationDetail], error) {
	if mock.ListFunc == nil {
		panic("donationServiceMock.ListFunc: method is nil but donationService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input donation.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *donationServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input donation.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
