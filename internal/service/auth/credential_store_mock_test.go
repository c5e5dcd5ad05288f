package auth

import (
	"sync"
)

var _ credentialStore = &credentialStoreMock{}

type credentialStoreMock struct {
	ClearFunc func() error

	calls struct {
		Clear []struct{}
	}
	lockClear sync.RWMutex
}

func (mock *credentialStoreMock) Clear() error {
	if mock.ClearFunc == nil {
		panic("credentialStoreMock.ClearFunc: method is nil but credentialStore.Clear was just called")
	}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, struct{}{})
	mock.lockClear.Unlock()
	return mock.ClearFunc()
}

func (mock *credentialStoreMock) ClearCalls() []struct{} {
	mock.lockClear.RLock()
	calls := mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}
