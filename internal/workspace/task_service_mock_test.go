package workspace

import (
	"context"
	"sync"

	"github.com/heartmarshall/agei/internal/domain"
)

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Task, error)
	CreateFunc func(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	UpdateFunc func(ctx context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error)
	DeleteFunc func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Draft domain.TaskDraft
		}
		Update []struct {
			Ctx   context.Context
			Id    int64
			Draft domain.TaskDraft
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *taskServiceMock) List(ctx context.Context) ([]domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskServiceMock.ListFunc: method is nil but taskService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *taskServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *taskServiceMock) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskServiceMock.CreateFunc: method is nil but taskService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft domain.TaskDraft
	}{
		Ctx:   ctx,
		Draft: draft,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, draft)
}

func (mock *taskServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Draft domain.TaskDraft
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskServiceMock) Update(ctx context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskServiceMock.UpdateFunc: method is nil but taskService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Draft domain.TaskDraft
	}{
		Ctx:   ctx,
		Id:    id,
		Draft: draft,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, draft)
}

func (mock *taskServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    int64
	Draft domain.TaskDraft
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *taskServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("taskServiceMock.DeleteFunc: method is nil but taskService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *taskServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
