package session

import (
	"context"
	"sync"

	"github.com/heartmarshall/agei/internal/domain"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc    func(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	RegisterFunc func(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	LogoutFunc   func(ctx context.Context) error

	calls struct {
		Login []struct {
			Ctx   context.Context
			Creds domain.Credentials
		}
		Register []struct {
			Ctx context.Context
			Reg domain.Registration
		}
		Logout []struct {
			Ctx context.Context
		}
	}
	lockLogin    sync.RWMutex
	lockRegister sync.RWMutex
	lockLogout   sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Creds domain.Credentials
	}{
		Ctx:   ctx,
		Creds: creds,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, creds)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Creds domain.Credentials
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Reg domain.Registration
	}{
		Ctx: ctx,
		Reg: reg,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, reg)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx context.Context
	Reg domain.Registration
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}
