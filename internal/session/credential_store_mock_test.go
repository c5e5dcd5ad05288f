package session

import (
	"sync"
)

var _ credentialStore = &credentialStoreMock{}

type credentialStoreMock struct {
	TokenFunc func() (string, bool, error)
	SaveFunc  func(token string) error

	calls struct {
		Token []struct{}
		Save []struct {
			Token string
		}
	}
	lockToken sync.RWMutex
	lockSave  sync.RWMutex
}

func (mock *credentialStoreMock) Token() (string, bool, error) {
	if mock.TokenFunc == nil {
		panic("credentialStoreMock.TokenFunc: method is nil but credentialStore.Token was just called")
	}
	callInfo := struct{}{}
	mock.lockToken.Lock()
	mock.calls.Token = append(mock.calls.Token, callInfo)
	mock.lockToken.Unlock()
	return mock.TokenFunc()
}

func (mock *credentialStoreMock) TokenCalls() []struct{} {
	mock.lockToken.RLock()
	calls := mock.calls.Token
	mock.lockToken.RUnlock()
	return calls
}

func (mock *credentialStoreMock) Save(token string) error {
	if mock.SaveFunc == nil {
		panic("credentialStoreMock.SaveFunc: method is nil but credentialStore.Save was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(token)
}

func (mock *credentialStoreMock) SaveCalls() []struct {
	Token string
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
