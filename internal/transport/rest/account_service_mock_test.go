package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/domain"
	"github.com/heartmarshall/givefund-backend/internal/service/account"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	ChangeRoleFunc           func(ctx context.Context, input account.ChangeRoleInput) (domain.Role, error)
	CurrentSessionFunc       func(ctx context.Context) (*domain.Account, error)
	DeactivateFunc           func(ctx context.Context, ids []uuid.UUID) (int64, error)
	ListFunc                 func(ctx context.Context, input account.ListInput) (domain.Page[domain.Account], error)
	LoginFunc                func(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)
	LogoutFunc               func(ctx context.Context, token string) error
	RegisterFunc             func(ctx context.Context, input account.RegisterInput) (*domain.Account, error)
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	ResetPasswordFunc        func(ctx context.Context, input account.ResetPasswordInput) error
	UpdateProfileFunc        func(ctx context.Context, input account.UpdateProfileInput) (*domain.Account, error)
	VerifyFunc               func(ctx context.Context, accountID uuid.UUID) error

	calls struct {
		ChangeRole []struct {
			Ctx   context.Context
			Input account.ChangeRoleInput
		}
		CurrentSession []struct {
			Ctx context.Context
		}
		Deactivate []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input account.ListInput
		}
		Login []struct {
			Ctx   context.Context
			Input account.LoginInput
		}
		Logout []struct {
			Ctx   context.Context
			Token string
		}
		Register []struct {
			Ctx   context.Context
			Input account.RegisterInput
		}
		RequestPasswordReset []struct {
			Ctx   context.Context
			Email string
		}
		ResetPassword []struct {
			Ctx   context.Context
			Input account.ResetPasswordInput
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input account.UpdateProfileInput
		}
		Verify []struct {
			Ctx       context.Context
			AccountID uuid.UUID
		}
	}
	lockChangeRole           sync.RWMutex
	lockCurrentSession       sync.RWMutex
	lockDeactivate           sync.RWMutex
	lockList                 sync.RWMutex
	lockLogin                sync.RWMutex
	lockLogout               sync.RWMutex
	lockRegister             sync.RWMutex
	lockRequestPasswordReset sync.RWMutex
	lockResetPassword        sync.RWMutex
	lockUpdateProfile        sync.RWMutex
	lockVerify               sync.RWMutex
}

func (mock *accountServiceMock) ChangeRole(ctx context.Context, input account.ChangeRoleInput) (domain.Role, error) {
	if mock.ChangeRoleFunc == nil {
		panic("accountServiceMock.ChangeRoleFunc: method is nil but accountService.ChangeRole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.ChangeRoleInput
	}{Ctx: ctx, Input: input}
	mock.lockChangeRole.Lock()
	mock.calls.ChangeRole = append(mock.calls.ChangeRole, callInfo)
	mock.lockChangeRole.Unlock()
	return mock.ChangeRoleFunc(ctx, input)
}

func (mock *accountServiceMock) ChangeRoleCalls() []struct {
	Ctx   context.Context
	Input account.ChangeRoleInput
} {
	mock.lockChangeRole.RLock()
	calls := mock.calls.ChangeRole
	mock.lockChangeRole.RUnlock()
	return calls
}

func (mock *accountServiceMock) CurrentSession(ctx context.Context) (*domain.Account, error) {
	if mock.CurrentSessionFunc == nil {
		panic("accountServiceMock.CurrentSessionFunc: method is nil but accountService.CurrentSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCurrentSession.Lock()
	mock.calls.CurrentSession = append(mock.calls.CurrentSession, callInfo)
	mock.lockCurrentSession.Unlock()
	return mock.CurrentSessionFunc(ctx)
}

func (mock *accountServiceMock) CurrentSessionCalls() []struct {
	Ctx context.Context
} {
	mock.lockCurrentSession.RLock()
	calls := mock.calls.CurrentSession
	mock.lockCurrentSession.RUnlock()
	return calls
}

func (mock *accountServiceMock) Deactivate(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if mock.DeactivateFunc == nil {
		panic("accountServiceMock.DeactivateFunc: method is nil but accountService.Deactivate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockDeactivate.Lock()
	mock.calls.Deactivate = append(mock.calls.Deactivate, callInfo)
	mock.lockDeactivate.Unlock()
	return mock.DeactivateFunc(ctx, ids)
}

func (mock *accountServiceMock) DeactivateCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockDeactivate.RLock()
	calls := mock.calls.Deactivate
	mock.lockDeactivate.RUnlock()
	return calls
}

func (mock *accountServiceMock) List(ctx context.Context, input account.ListInput) (domain.Page[domain.Account], error) {
	if mock.ListFunc == nil {
		panic("accountServiceMock.ListFunc: method is nil but accountService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *accountServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input account.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *accountServiceMock) Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("accountServiceMock.LoginFunc: method is nil but accountService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *accountServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input account.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *accountServiceMock) Logout(ctx context.Context, token string) error {
	if mock.LogoutFunc == nil {
		panic("accountServiceMock.LogoutFunc: method is nil but accountService.Logout was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx, token)
}

func (mock *accountServiceMock) LogoutCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *accountServiceMock) Register(ctx context.Context, input account.RegisterInput) (*domain.Account, error) {
	if mock.RegisterFunc == nil {
		panic("accountServiceMock.RegisterFunc: method is nil but accountService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *accountServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input account.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *accountServiceMock) RequestPasswordReset(ctx context.Context, email string) error {
	if mock.RequestPasswordResetFunc == nil {
		panic("accountServiceMock.RequestPasswordResetFunc: method is nil but accountService.RequestPasswordReset was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockRequestPasswordReset.Lock()
	mock.calls.RequestPasswordReset = append(mock.calls.RequestPasswordReset, callInfo)
	mock.lockRequestPasswordReset.Unlock()
	return mock.RequestPasswordResetFunc(ctx, email)
}

func (mock *accountServiceMock) RequestPasswordResetCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockRequestPasswordReset.RLock()
	calls := mock.calls.RequestPasswordReset
	mock.lockRequestPasswordReset.RUnlock()
	return calls
}

func (mock *accountServiceMock) ResetPassword(ctx context.Context, input account.ResetPasswordInput) error {
	if mock.ResetPasswordFunc == nil {
		panic("accountServiceMock.ResetPasswordFunc: method is nil but accountService.ResetPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.ResetPasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockResetPassword.Lock()
	mock.calls.ResetPassword = append(mock.calls.ResetPassword, callInfo)
	mock.lockResetPassword.Unlock()
	return mock.ResetPasswordFunc(ctx, input)
}

func (mock *accountServiceMock) ResetPasswordCalls() []struct {
	Ctx   context.Context
	Input account.ResetPasswordInput
} {
	mock.lockResetPassword.RLock()
	calls := mock.calls.ResetPassword
	mock.lockResetPassword.RUnlock()
	return calls
}

func (mock *accountServiceMock) UpdateProfile(ctx context.Context, input account.UpdateProfileInput) (*domain.Account, error) {
	if mock.UpdateProfileFunc == nil {
		panic("accountServiceMock.UpdateProfileFunc: method is nil but accountService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *accountServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input account.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *accountServiceMock) Verify(ctx context.Context, accountID uuid.UUID) error {
	if mock.VerifyFunc == nil {
		panic("accountServiceMock.VerifyFunc: method is nil but accountService.Verify was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AccountID uuid.UUID
	}{Ctx: ctx, AccountID: accountID}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, accountID)
}

func (mock *accountServiceMock) VerifyCalls() []struct {
	Ctx       context.Context
	AccountID uuid.UUID
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
