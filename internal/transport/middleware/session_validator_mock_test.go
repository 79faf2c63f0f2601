package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

var _ sessionValidator = &sessionValidatorMock{}

type sessionValidatorMock struct {
	ValidateSessionFunc func(ctx context.Context, token string) (*domain.SessionIdentity, error)

	calls struct {
		ValidateSession []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockValidateSession sync.RWMutex
}

func (mock *sessionValidatorMock) ValidateSession(ctx context.Context, token string) (*domain.SessionIdentity, error) {
	if mock.ValidateSessionFunc == nil {
		panic("sessionValidatorMock.ValidateSessionFunc: method is nil but sessionValidator.ValidateSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockValidateSession.Lock()
	mock.calls.ValidateSession = append(mock.calls.ValidateSession, callInfo)
	mock.lockValidateSession.Unlock()
	return mock.ValidateSessionFunc(ctx, token)
}

func (mock *sessionValidatorMock) ValidateSessionCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockValidateSession.RLock()
	calls := mock.calls.ValidateSession
	mock.lockValidateSession.RUnlock()
	return calls
}
