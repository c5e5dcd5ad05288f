package training

import (
	"context"
	"sync"
)

var _ apiClient = &apiClientMock{}

type apiClientMock struct {
	GetFunc    func(ctx context.Context, path string, out any) error
	PostFunc   func(ctx context.Context, path string, body any, out any) error
	PutFunc    func(ctx context.Context, path string, body any, out any) error
	DeleteFunc func(ctx context.Context, path string) error

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
		Put []struct {
			Ctx  context.Context
			Path string
			Body any
			Out  any
		}
		Delete []struct {
			Ctx  context.Context
			Path string
		}
	}
	lockGet    sync.RWMutex
	lockPost   sync.RWMutex
	lockPut    sync.RWMutex
	lockDelete sync.RWMutex
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

func (mock *apiClientMock) Put(ctx context.Context, path string, body any, out any) error {
	if mock.PutFunc == nil {
		panic("apiClientMock.PutFunc: method is nil but apiClient.Put was just called")
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
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, path, body, out)
}

func (mock *apiClientMock) PutCalls() []struct {
	Ctx  context.Context
	Path string
	Body any
	Out  any
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *apiClientMock) Delete(ctx context.Context, path string) error {
	if mock.DeleteFunc == nil {
		panic("apiClientMock.DeleteFunc: method is nil but apiClient.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{
		Ctx:  ctx,
		Path: path,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, path)
}

func (mock *apiClientMock) DeleteCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
