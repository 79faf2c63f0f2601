package account

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	SendPasswordResetFunc func(ctx context.Context, email string, fullname string, token string) error
	SendVerificationFunc  func(ctx context.Context, email string, fullname string, accountID uuid.UUID) error

	calls struct {
		SendPasswordReset []struct {
			Ctx      context.Context
			Email    string
			Fullname string
			Token    string
		}
		SendVerification []struct {
			Ctx       context.Context
			Email     string
			Fullname  string
			AccountID uuid.UUID
		}
	}
	lockSendPasswordReset sync.RWMutex
	lockSendVerification  sync.RWMutex
}

func (mock *notifierMock) SendPasswordReset(ctx context.Context, email string, fullname string, token string) error {
	if mock.SendPasswordResetFunc == nil {
		panic("notifierMock.SendPasswordResetFunc: method is nil but notifier.SendPasswordReset was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Fullname string
		Token    string
	}{Ctx: ctx, Email: email, Fullname: fullname, Token: token}
	mock.lockSendPasswordReset.Lock()
	mock.calls.SendPasswordReset = append(mock.calls.SendPasswordReset, callInfo)
	mock.lockSendPasswordReset.Unlock()
	return mock.SendPasswordResetFunc(ctx, email, fullname, token)
}

func (mock *notifierMock) SendPasswordResetCalls() []struct {
	Ctx      context.Context
	Email    string
	Fullname string
	Token    string
} {
	mock.lockSendPasswordReset.RLock()
	calls := mock.calls.SendPasswordReset
	mock.lockSendPasswordReset.RUnlock()
	return calls
}

func (mock *notifierMock) SendVerification(ctx context.Context, email string, fullname string, accountID uuid.UUID) error {
	if mock.SendVerificationFunc == nil {
		panic("notifierMock.SendVerificationFunc: method is nil but notifier.SendVerification was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Email     string
		Fullname  string
		AccountID uuid.UUID
	}{Ctx: ctx, Email: email, Fullname: fullname, AccountID: accountID}
	mock.lockSendVerification.Lock()
	mock.calls.SendVerification = append(mock.calls.SendVerification, callInfo)
	mock.lockSendVerification.Unlock()
	return mock.SendVerificationFunc(ctx, email, fullname, accountID)
}

func (mock *notifierMock) SendVerificationCalls() []struct {
	Ctx       context.Context
	Email     string
	Fullname  string
	AccountID uuid.UUID
} {
	mock.lockSendVerification.RLock()
	calls := mock.calls.SendVerification
	mock.lockSendVerification.RUnlock()
	return calls
}
