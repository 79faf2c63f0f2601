package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/givefund-backend/internal/service/payment"
	"github.com/heartmarshall/givefund-backend/internal/service/settlement"
)

var _ paymentService = &paymentServiceMock{}

type paymentServiceMock struct {
	ExecuteFunc  func(ctx context.Context, input payment.ExecuteInput) (*settlement.Result, error)
	InitiateFunc func(ctx context.Context, input payment.InitiateInput) (*payment.InitiateResult, error)

	calls struct {
		Execute []struct {
			Ctx   context.Context
			Input payment.ExecuteInput
		}
		Initiate []struct {
			Ctx   context.Context
			Input payment.InitiateInput
		}
	}
	lockExecute  sync.RWMutex
	lockInitiate sync.RWMutex
}

func (mock *paymentServiceMock) Execute(ctx context.Context, input payment.ExecuteInput) (*settlement.Result, error) {
	if mock.ExecuteFunc == nil {
		panic("paymentServiceMock.ExecuteFunc: method is nil but paymentService.Execute was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input payment.ExecuteInput
	}{Ctx: ctx, Input: input}
	mock.lockExecute.Lock()
	mock.calls.Execute = append(mock.calls.Execute, callInfo)
	mock.lockExecute.Unlock()
	return mock.ExecuteFunc(ctx, input)
}

func (mock *paymentServiceMock) ExecuteCalls() []struct {
	Ctx   context.Context
	Input payment.ExecuteInput
} {
	mock.lockExecute.RLock()
	calls := mock.calls.Execute
	mock.lockExecute.RUnlock()
	return calls
}

func (mock *paymentServiceMock) Initiate(ctx context.Context, input payment.InitiateInput) (*payment.InitiateResult, error) {
	if mock.InitiateFunc == nil {
		panic("paymentServiceMock.InitiateFunc: method is nil but paymentService.Initiate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input payment.InitiateInput
	}{Ctx: ctx, Input: input}
	mock.lockInitiate.Lock()
	mock.calls.Initiate = append(mock.calls.Initiate, callInfo)
	mock.lockInitiate.Unlock()
	return mock.InitiateFunc(ctx, input)
}

func (mock *paymentServiceMock) InitiateCalls() []struct {
	Ctx   context.Context
	Input payment.InitiateInput
} {
	mock.lockInitiate.RLock()
	calls := mock.calls.Initiate
	mock.lockInitiate.RUnlock()
	return calls
}
