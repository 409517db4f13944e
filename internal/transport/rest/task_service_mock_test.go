package rest

import (
	"context"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"github.com/heartmarshall/taskboard-backend/internal/service/task"
	"sync"
)

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	ListFunc       func(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Task], error)
	CreateTaskFunc func(ctx context.Context, input task.CreateTaskInput) (domain.Task, error)
	UpdateTaskFunc func(ctx context.Context, input task.UpdateTaskInput) (task.UpdateResult, error)
	BulkDeleteFunc func(ctx context.Context, ids []string) (domain.DeleteSummary, error)

	calls struct {
		List []struct {
			Ctx context.Context
			Raw listing.RawParams
		}
		CreateTask []struct {
			Ctx   context.Context
			Input task.CreateTaskInput
		}
		UpdateTask []struct {
			Ctx   context.Context
			Input task.UpdateTaskInput
		}
		BulkDelete []struct {
			Ctx context.Context
			Ids []string
		}
	}
	lockList       sync.RWMutex
	lockCreateTask sync.RWMutex
	lockUpdateTask sync.RWMutex
	lockBulkDelete sync.RWMutex
}

func (mock *taskServiceMock) List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Task], error) {
	if mock.ListFunc == nil {
		panic("taskServiceMock.ListFunc: method is nil but taskService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Raw listing.RawParams
	}{Ctx: ctx, Raw: raw}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, raw)
}

func (mock *taskServiceMock) ListCalls() []struct {
	Ctx context.Context
	Raw listing.RawParams
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *taskServiceMock) CreateTask(ctx context.Context, input task.CreateTaskInput) (domain.Task, error) {
	if mock.CreateTaskFunc == nil {
		panic("taskServiceMock.CreateTaskFunc: method is nil but taskService.CreateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.CreateTaskInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTask.Lock()
	mock.calls.CreateTask = append(mock.calls.CreateTask, callInfo)
	mock.lockCreateTask.Unlock()
	return mock.CreateTaskFunc(ctx, input)
}

func (mock *taskServiceMock) CreateTaskCalls() []struct {
	Ctx   context.Context
	Input task.CreateTaskInput
} {
	mock.lockCreateTask.RLock()
	calls := mock.calls.CreateTask
	mock.lockCreateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) UpdateTask(ctx context.Context, input task.UpdateTaskInput) (task.UpdateResult, error) {
	if mock.UpdateTaskFunc == nil {
		panic("taskServiceMock.UpdateTaskFunc: method is nil but taskService.UpdateTask was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.UpdateTaskInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateTask.Lock()
	mock.calls.UpdateTask = append(mock.calls.UpdateTask, callInfo)
	mock.lockUpdateTask.Unlock()
	return mock.UpdateTaskFunc(ctx, input)
}

func (mock *taskServiceMock) UpdateTaskCalls() []struct {
	Ctx   context.Context
	Input task.UpdateTaskInput
} {
	mock.lockUpdateTask.RLock()
	calls := mock.calls.UpdateTask
	mock.lockUpdateTask.RUnlock()
	return calls
}

func (mock *taskServiceMock) BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error) {
	if mock.BulkDeleteFunc == nil {
		panic("taskServiceMock.BulkDeleteFunc: method is nil but taskService.BulkDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []string
	}{Ctx: ctx, Ids: ids}
	mock.lockBulkDelete.Lock()
	mock.calls.BulkDelete = append(mock.calls.BulkDelete, callInfo)
	mock.lockBulkDelete.Unlock()
	return mock.BulkDeleteFunc(ctx, ids)
}

func (mock *taskServiceMock) BulkDeleteCalls() []struct {
	Ctx context.Context
	Ids []string
} {
	mock.lockBulkDelete.RLock()
	calls := mock.calls.BulkDelete
	mock.lockBulkDelete.RUnlock()
	return calls
}
