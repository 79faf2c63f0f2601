package audit

import (
	"context"
	"sync"

	auditrepo "github.com/heartmarshall/givefund-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	ListFunc  func(ctx context.Context, f auditrepo.Filter) ([]domain.AuditRecord, error)
	CountFunc func(ctx context.Context, f auditrepo.Filter) (int, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   auditrepo.Filter
		}
		Count []struct {
			Ctx context.Context
			F   auditrepo.Filter
		}
	}
	lockList  sync.RWMutex
	lockCount sync.RWMutex
}

func (mock *auditRepoMock) List(ctx context.Context, f auditrepo.Filter) ([]domain.AuditRecord, error) {
	if mock.ListFunc == nil {
		panic("auditRepoMock.ListFunc: method is nil but auditRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   auditrepo.Filter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *auditRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   auditrepo.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *auditRepoMock) Count(ctx context.Context, f auditrepo.Filter) (int, error) {
	if mock.CountFunc == nil {
		panic("auditRepoMock.CountFunc: method is nil but auditRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   auditrepo.Filter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *auditRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   auditrepo.Filter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
