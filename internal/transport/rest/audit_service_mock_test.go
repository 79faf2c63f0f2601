package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/audit"
)

var _ auditService = &auditServiceMock{}

type auditServiceMock struct {
	ListFunc func(ctx context.Context, input audit.ListInput) (domain.Page[domain.AuditRecord], error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Input audit.ListInput
		}
	}
	lockList sync.RWMutex
}

func (mock *auditServiceMock) List(ctx context.Context, input audit.ListInput) (domain.Page[domain.AuditRecord], error) {
	if mock.ListFunc == nil {
		panic("auditServiceMock.ListFunc: method is nil but auditService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input audit.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *auditServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input audit.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
