package emotional

import (
	"context"
	"sync"
)

var _ apiClient = &apiClientMock{}

type apiClientMock struct {
	GetFunc  func(ctx context.Context, path string, out any) error
	PostFunc func(ctx context.Context, path string, body any, out any) error

	calls struct {
		Get []struct {
			Ctx  context.Context
			Path string
			Out  any
		}
		Post []struct {
			Ctx  context.Context
			Path string
			Body any
			Out  any
		}
	}
	lockGet  sync.RWMutex
	lockPost sync.RWMutex
}

func (mock *apiClientMock) Get(ctx context.Context, path string, out any) error {
	if mock.GetFunc == nil {
		panic("apiClientMock.GetFunc: method is nil but apiClient.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
		Out  any
	}{
		Ctx:  ctx,
		Path: path,
		Out:  out,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, path, out)
}

func (mock *apiClientMock) GetCalls() []struct {
	Ctx  context.Context
	Path string
	Out  any
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *apiClientMock) Post(ctx context.Context, path string, body any, out any) error {
	if mock.PostFunc == nil {
		panic("apiClientMock.PostFunc: method is nil but apiClient.Post was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
		Body any
		Out  any
	}{
		Ctx:  ctx,
		Path: path,
		Body: body,
		Out:  out,
	}
	mock.lockPost.Lock()
	mock.calls.Post = append(mock.calls.Post, callInfo)
	mock.lockPost.Unlock()
	return mock.PostFunc(ctx, path, body, out)
}

func (mock *apiClientMock) PostCalls() []struct {
	Ctx  context.Context
	Path string
	Body any
	Out  any
} {
	mock.lockPost.RLock()
	calls := mock.calls.Post
	mock.lockPost.RUnlock()
	return calls
}
