package workspace

import (
	"context"
	"sync"

	"github.com/heartmarshall/agei/internal/domain"
)

var _ trainingService = &trainingServiceMock{}

type trainingServiceMock struct {
	ListCoursesFunc    func(ctx context.Context) ([]domain.Course, error)
	CreateCourseFunc   func(ctx context.Context, draft domain.CourseDraft) (*domain.Course, error)
	UpdateCourseFunc   func(ctx context.Context, id int64, draft domain.CourseDraft) (*domain.Course, error)
	DeleteCourseFunc   func(ctx context.Context, id int64) error
	GetSuggestionsFunc func(ctx context.Context) ([]domain.Course, error)

	calls struct {
		ListCourses []struct {
			Ctx context.Context
		}
		CreateCourse []struct {
			Ctx   context.Context
			Draft domain.CourseDraft
		}
		UpdateCourse []struct {
			Ctx   context.Context
			Id    int64
			Draft domain.CourseDraft
		}
		DeleteCourse []struct {
			Ctx context.Context
			Id  int64
		}
		GetSuggestions []struct {
			Ctx context.Context
		}
	}
	lockListCourses    sync.RWMutex
	lockCreateCourse   sync.RWMutex
	lockUpdateCourse   sync.RWMutex
	lockDeleteCourse   sync.RWMutex
	lockGetSuggestions sync.RWMutex
}

func (mock *trainingServiceMock) ListCourses(ctx context.Context) ([]domain.Course, error) {
	if mock.ListCoursesFunc == nil {
		panic("trainingServiceMock.ListCoursesFunc: method is nil but trainingService.ListCourses was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListCourses.Lock()
	mock.calls.ListCourses = append(mock.calls.ListCourses, callInfo)
	mock.lockListCourses.Unlock()
	return mock.ListCoursesFunc(ctx)
}

func (mock *trainingServiceMock) ListCoursesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCourses.RLock()
	calls := mock.calls.ListCourses
	mock.lockListCourses.RUnlock()
	return calls
}

func (mock *trainingServiceMock) CreateCourse(ctx context.Context, draft domain.CourseDraft) (*domain.Course, error) {
	if mock.CreateCourseFunc == nil {
		panic("trainingServiceMock.CreateCourseFunc: method is nil but trainingService.CreateCourse was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft domain.CourseDraft
	}{
		Ctx:   ctx,
		Draft: draft,
	}
	mock.lockCreateCourse.Lock()
	mock.calls.CreateCourse = append(mock.calls.CreateCourse, callInfo)
	mock.lockCreateCourse.Unlock()
	return mock.CreateCourseFunc(ctx, draft)
}

func (mock *trainingServiceMock) CreateCourseCalls() []struct {
	Ctx   context.Context
	Draft domain.CourseDraft
} {
	mock.lockCreateCourse.RLock()
	calls := mock.calls.CreateCourse
	mock.lockCreateCourse.RUnlock()
	return calls
}

func (mock *trainingServiceMock) UpdateCourse(ctx context.Context, id int64, draft domain.CourseDraft) (*domain.Course, error) {
	if mock.UpdateCourseFunc == nil {
		panic("trainingServiceMock.UpdateCourseFunc: method is nil but trainingService.UpdateCourse was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Draft domain.CourseDraft
	}{
		Ctx:   ctx,
		Id:    id,
		Draft: draft,
	}
	mock.lockUpdateCourse.Lock()
	mock.calls.UpdateCourse = append(mock.calls.UpdateCourse, callInfo)
	mock.lockUpdateCourse.Unlock()
	return mock.UpdateCourseFunc(ctx, id, draft)
}

func (mock *trainingServiceMock) UpdateCourseCalls() []struct {
	Ctx   context.Context
	Id    int64
	Draft domain.CourseDraft
} {
	mock.lockUpdateCourse.RLock()
	calls := mock.calls.UpdateCourse
	mock.lockUpdateCourse.RUnlock()
	return calls
}

func (mock *trainingServiceMock) DeleteCourse(ctx context.Context, id int64) error {
	if mock.DeleteCourseFunc == nil {
		panic("trainingServiceMock.DeleteCourseFunc: method is nil but trainingService.DeleteCourse was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteCourse.Lock()
	mock.calls.DeleteCourse = append(mock.calls.DeleteCourse, callInfo)
	mock.lockDeleteCourse.Unlock()
	return mock.DeleteCourseFunc(ctx, id)
}

func (mock *trainingServiceMock) DeleteCourseCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDeleteCourse.RLock()
	calls := mock.calls.DeleteCourse
	mock.lockDeleteCourse.RUnlock()
	return calls
}

func (mock *trainingServiceMock) GetSuggestions(ctx context.Context) ([]domain.Course, error) {
	if mock.GetSuggestionsFunc == nil {
		panic("trainingServiceMock.GetSuggestionsFunc: method is nil but trainingService.GetSuggestions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetSuggestions.Lock()
	mock.calls.GetSuggestions = append(mock.calls.GetSuggestions, callInfo)
	mock.lockGetSuggestions.Unlock()
	return mock.GetSuggestionsFunc(ctx)
}

func (mock *trainingServiceMock) GetSuggestionsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetSuggestions.RLock()
	calls := mock.calls.GetSuggestions
	mock.lockGetSuggestions.RUnlock()
	return calls
}
