package workspace

import (
	"context"
	"sync"

	"github.com/heartmarshall/agei/internal/domain"
)

var _ emotionalService = &emotionalServiceMock{}

type emotionalServiceMock struct {
	ListCheckInsFunc  func(ctx context.Context) ([]domain.CheckIn, error)
	RecordCheckInFunc func(ctx context.Context, draft domain.CheckInDraft) (*domain.CheckIn, error)
	ListEventsFunc    func(ctx context.Context) ([]domain.Event, error)
	RecordEventFunc   func(ctx context.Context, draft domain.EventDraft) (*domain.Event, error)

	calls struct {
		ListCheckIns []struct {
			Ctx context.Context
		}
		RecordCheckIn []struct {
			Ctx   context.Context
			Draft domain.CheckInDraft
		}
		ListEvents []struct {
			Ctx context.Context
		}
		RecordEvent []struct {
			Ctx   context.Context
			Draft domain.EventDraft
		}
	}
	lockListCheckIns  sync.RWMutex
	lockRecordCheckIn sync.RWMutex
	lockListEvents    sync.RWMutex
	lockRecordEvent   sync.RWMutex
}

func (mock *emotionalServiceMock) ListCheckIns(ctx context.Context) ([]domain.CheckIn, error) {
	if mock.ListCheckInsFunc == nil {
		panic("emotionalServiceMock.ListCheckInsFunc: method is nil but emotionalService.ListCheckIns was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListCheckIns.Lock()
	mock.calls.ListCheckIns = append(mock.calls.ListCheckIns, callInfo)
	mock.lockListCheckIns.Unlock()
	return mock.ListCheckInsFunc(ctx)
}

func (mock *emotionalServiceMock) ListCheckInsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCheckIns.RLock()
	calls := mock.calls.ListCheckIns
	mock.lockListCheckIns.RUnlock()
	return calls
}

func (mock *emotionalServiceMock) RecordCheckIn(ctx context.Context, draft domain.CheckInDraft) (*domain.CheckIn, error) {
	if mock.RecordCheckInFunc == nil {
		panic("emotionalServiceMock.RecordCheckInFunc: method is nil but emotionalService.RecordCheckIn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft domain.CheckInDraft
	}{
		Ctx:   ctx,
		Draft: draft,
	}
	mock.lockRecordCheckIn.Lock()
	mock.calls.RecordCheckIn = append(mock.calls.RecordCheckIn, callInfo)
	mock.lockRecordCheckIn.Unlock()
	return mock.RecordCheckInFunc(ctx, draft)
}

func (mock *emotionalServiceMock) RecordCheckInCalls() []struct {
	Ctx   context.Context
	Draft domain.CheckInDraft
} {
	mock.lockRecordCheckIn.RLock()
	calls := mock.calls.RecordCheckIn
	mock.lockRecordCheckIn.RUnlock()
	return calls
}

func (mock *emotionalServiceMock) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if mock.ListEventsFunc == nil {
		panic("emotionalServiceMock.ListEventsFunc: method is nil but emotionalService.ListEvents was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListEvents.Lock()
	mock.calls.ListEvents = append(mock.calls.ListEvents, callInfo)
	mock.lockListEvents.Unlock()
	return mock.ListEventsFunc(ctx)
}

func (mock *emotionalServiceMock) ListEventsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListEvents.RLock()
	calls := mock.calls.ListEvents
	mock.lockListEvents.RUnlock()
	return calls
}

func (mock *emotionalServiceMock) RecordEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	if mock.RecordEventFunc == nil {
		panic("emotionalServiceMock.RecordEventFunc: method is nil but emotionalService.RecordEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Draft domain.EventDraft
	}{
		Ctx:   ctx,
		Draft: draft,
	}
	mock.lockRecordEvent.Lock()
	mock.calls.RecordEvent = append(mock.calls.RecordEvent, callInfo)
	mock.lockRecordEvent.Unlock()
	return mock.RecordEventFunc(ctx, draft)
}

func (mock *emotionalServiceMock) RecordEventCalls() []struct {
	Ctx   context.Context
	Draft domain.EventDraft
} {
	mock.lockRecordEvent.RLock()
	calls := mock.calls.RecordEvent
	mock.lockRecordEvent.RUnlock()
	return calls
}
