package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc             func(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error)
	DeleteExpiredFunc      func(ctx context.Context, retention time.Duration) (int64, error)
	GetIdentityFunc        func(ctx context.Context, tokenHash string) (*domain.SessionIdentity, error)
	RevokeAllByAccountFunc func(ctx context.Context, accountID uuid.UUID) error
	RevokeByHashFunc       func(ctx context.Context, tokenHash string) error

	calls struct {
		Create []struct {
			Ctx       context.Context
			AccountID uuid.UUID
			TokenHash string
			ExpiresAt time.Time
		}
		DeleteExpired []struct {
			Ctx       context.Context
			Retention time.Duration
		}
		GetIdentity []struct {
			Ctx       context.Context
			TokenHash string
		}
		RevokeAllByAccount []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
		RevokeByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
	}
	lockCreate             sync.RWMutex
	lockDeleteExpired      sync.RWMutex
	lockGetIdentity        sync.RWMutex
	lockRevokeAllByAccount sync.RWMutex
	lockRevokeByHash       sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
		TokenHash string
		ExpiresAt time.Time
	}{Ctx: ctx, AccountID: accountID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, accountID, tokenHash, expiresAt)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
	TokenHash string
	ExpiresAt time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteExpired(ctx context.Context, retention time.Duration) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionRepoMock.DeleteExpiredFunc: method is nil but sessionRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Retention time.Duration
	}{Ctx: ctx, Retention: retention}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, retention)
}

func (mock *sessionRepoMock) DeleteExpiredCalls() []struct {
	Ctx       context.Context
	Retention time.Duration
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetIdentity(ctx context.Context, tokenHash string) (*domain.SessionIdentity, error) {
	if mock.GetIdentityFunc == nil {
		panic("sessionRepoMock.GetIdentityFunc: method is nil but sessionRepo.GetIdentity was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockGetIdentity.Lock()
	mock.calls.GetIdentity = append(mock.calls.GetIdentity, callInfo)
	mock.lockGetIdentity.Unlock()
	return mock.GetIdentityFunc(ctx, tokenHash)
}

func (mock *sessionRepoMock) GetIdentityCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockGetIdentity.RLock()
	calls := mock.calls.GetIdentity
	mock.lockGetIdentity.RUnlock()
	return calls
}

func (mock *sessionRepoMock) RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error {
	if mock.RevokeAllByAccountFunc == nil {
		panic("sessionRepoMock.RevokeAllByAccountFunc: method is nil but sessionRepo.RevokeAllByAccount was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockRevokeAllByAccount.Lock()
	mock.calls.RevokeAllByAccount = append(mock.calls.RevokeAllByAccount, callInfo)
	mock.lockRevokeAllByAccount.Unlock()
	return mock.RevokeAllByAccountFunc(ctx, accountID)
}

func (mock *sessionRepoMock) RevokeAllByAccountCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockRevokeAllByAccount.RLock()
	calls := mock.calls.RevokeAllByAccount
	mock.lockRevokeAllByAccount.RUnlock()
	return calls
}

func (mock *sessionRepoMock) RevokeByHash(ctx context.Context, tokenHash string) error {
	if mock.RevokeByHashFunc == nil {
		panic("sessionRepoMock.RevokeByHashFunc: method is nil but sessionRepo.RevokeByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockRevokeByHash.Lock()
	mock.calls.RevokeByHash = append(mock.calls.RevokeByHash, callInfo)
	mock.lockRevokeByHash.Unlock()
	return mock.RevokeByHashFunc(ctx, tokenHash)
}

func (mock *sessionRepoMock) RevokeByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockRevokeByHash.RLock()
	calls := mock.calls.RevokeByHash
	mock.lockRevokeByHash.RUnlock()
	return calls
}
