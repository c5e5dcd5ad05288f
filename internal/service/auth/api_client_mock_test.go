package auth

import (
	"context"
	"sync"
)

var _ apiClient = &apiClientMock{}

type apiClientMock struct {
	PostFunc func(ctx context.Context, path string, body any, out any) error

	calls struct {
		Post []struct {
			Ctx  context.Context
			Path string
			Body any
			Out  any
		}
	}
	lockPost sync.RWMutex
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
	}{Ctx: ctx, Path: path, Body: body, Out: out}
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
