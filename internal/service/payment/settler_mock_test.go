package payment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/settlement"
)

var _ settler = &settlerMock{}

type settlerMock struct {
	SettleFunc func(ctx context.Context, conf domain.CaptureConfirmation, actingAccountID uuid.UUID) (*settlement.Result, error)

	calls struct {
		Settle []struct {
			Ctx             context.Context
			Conf            domain.CaptureConfirmation
			ActingAccountID uuid.UUID
		}
	}
	lockSettle sync.RWMutex
}

func (mock *settlerMock) Settle(ctx context.Context, conf domain.CaptureConfirmation, actingAccountID uuid.UUID) (*settlement.Result, error) {
	if mock.SettleFunc == nil {
		panic("settlerMock.SettleFunc: method is nil but settler.Settle was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		Conf            domain.CaptureConfirmation
		ActingAccountID uuid.UUID
	}{Ctx: ctx, Conf: conf, ActingAccountID: actingAccountID}
	mock.lockSettle.Lock()
	mock.calls.Settle = append(mock.calls.Settle, callInfo)
	mock.lockSettle.Unlock()
	return mock.SettleFunc(ctx, conf, actingAccountID)
}

func (mock *settlerMock) SettleCalls() []struct {
	Ctx             context.Context
	Conf            domain.CaptureConfirmation
	ActingAccountID uuid.UUID
} {
	mock.lockSettle.RLock()
	calls := mock.calls.Settle
	mock.lockSettle.RUnlock()
	return calls
}
