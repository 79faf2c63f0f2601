package payment

import (
	"context"
	"sync"

	"github.com/heartmarshall/givefund-backend/internal/adapter/provider/paypal"
	"github.com/heartmarshall/givefund-backend/internal/domain"
)

var _ gateway = &gatewayMock{}

type gatewayMock struct {
	CreatePaymentFunc  func(ctx context.Context, req paypal.PaymentRequest) (*paypal.Payment, error)
	ExecutePaymentFunc func(ctx context.Context, paymentID string, payerID string) (*domain.CaptureConfirmation, error)

	calls struct {
		CreatePayment []struct {
			Ctx context.Context
			Req paypal.PaymentRequest
		}
		ExecutePayment []struct {
			Ctx       context.Context
			PaymentID string
			PayerID   string
		}
	}
	lockCreatePayment  sync.RWMutex
	lockExecutePayment sync.RWMutex
}

func (mock *gatewayMock) CreatePayment(ctx context.Context, req paypal.PaymentRequest) (*paypal.Payment, error) {
	if mock.CreatePaymentFunc == nil {
		panic("gatewayMock.CreatePaymentFunc: method is nil but gateway.CreatePayment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req paypal.PaymentRequest
	}{Ctx: ctx, Req: req}
	mock.lockCreatePayment.Lock()
	mock.calls.CreatePayment = append(mock.calls.CreatePayment, callInfo)
	mock.lockCreatePayment.Unlock()
	return mock.CreatePaymentFunc(ctx, req)
}

func (mock *gatewayMock) CreatePaymentCalls() []struct {
	Ctx context.Context
	Req paypal.PaymentRequest
} {
	mock.lockCreatePayment.RLock()
	calls := mock.calls.CreatePayment
	mock.lockCreatePayment.RUnlock()
	return calls
}

func (mock *gatewayMock) ExecutePayment(ctx context.Context, paymentID string, payerID string) (*domain.CaptureConfirmation, error) {
	if mock.ExecutePaymentFunc == nil {
		panic("gatewayMock.ExecutePaymentFunc: method is nil but gateway.ExecutePayment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		PaymentID string
		PayerID   string
	}{Ctx: ctx, PaymentID: paymentID, PayerID: payerID}
	mock.lockExecutePayment.Lock()
	mock.calls.ExecutePayment = append(mock.calls.ExecutePayment, callInfo)
	mock.lockExecutePayment.Unlock()
	return mock.ExecutePaymentFunc(ctx, paymentID, payerID)
}

func (mock *gatewayMock) ExecutePaymentCalls() []struct {
	Ctx       context.Context
	PaymentID string
	PayerID   string
} {
	mock.lockExecutePayment.RLock()
	calls := mock.calls.ExecutePayment
	mock.lockExecutePayment.RUnlock()
	return calls
}
