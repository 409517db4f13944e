package rest

import (
	"context"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/goal"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"sync"
)

var _ goalService = &goalServiceMock{}

type goalServiceMock struct {
	ListFunc            func(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Goal], error)
	CreateGoalFunc      func(ctx context.Context, input goal.CreateGoalInput) (domain.Goal, error)
	CreateObjectiveFunc func(ctx context.Context, input goal.CreateObjectiveInput) (domain.Objective, error)
	BulkDeleteFunc      func(ctx context.Context, ids []string) (domain.DeleteSummary, error)

	calls struct {
		List []struct {
			Ctx context.Context
			Raw listing.RawParams
		}
		CreateGoal []struct {
			Ctx   context.Context
			Input goal.CreateGoalInput
		}
		CreateObjective []struct {
			Ctx   context.Context
			Input goal.CreateObjectiveInput
		}
		BulkDelete []struct {
			Ctx context.Context
			Ids []string
		}
	}
	lockList            sync.RWMutex
	lockCreateGoal      sync.RWMutex
	lockCreateObjective sync.RWMutex
	lockBulkDelete      sync.RWMutex
}

func (mock *goalServiceMock) List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Goal], error) {
	if mock.ListFunc == nil {
		panic("goalServiceMock.ListFunc: method is nil but goalService.List was just called")
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

func (mock *goalServiceMock) ListCalls() []struct {
	Ctx context.Context
	Raw listing.RawParams
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *goalServiceMock) CreateGoal(ctx context.Context, input goal.CreateGoalInput) (domain.Goal, error) {
	if mock.CreateGoalFunc == nil {
		panic("goalServiceMock.CreateGoalFunc: method is nil but goalService.CreateGoal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input goal.CreateGoalInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateGoal.Lock()
	mock.calls.CreateGoal = append(mock.calls.CreateGoal, callInfo)
	mock.lockCreateGoal.Unlock()
	return mock.CreateGoalFunc(ctx, input)
}

func (mock *goalServiceMock) CreateGoalCalls() []struct {
	Ctx   context.Context
	Input goal.CreateGoalInput
} {
	mock.lockCreateGoal.RLock()
	calls := mock.calls.CreateGoal
	mock.lockCreateGoal.RUnlock()
	return calls
}

func (mock *goalServiceMock) CreateObjective(ctx context.Context, input goal.CreateObjectiveInput) (domain.Objective, error) {
	if mock.CreateObjectiveFunc == nil {
		panic("goalServiceMock.CreateObjectiveFunc: method is nil but goalService.CreateObjective was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input goal.CreateObjectiveInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateObjective.Lock()
	mock.calls.CreateObjective = append(mock.calls.CreateObjective, callInfo)
	mock.lockCreateObjective.Unlock()
	return mock.CreateObjectiveFunc(ctx, input)
}

func (mock *goalServiceMock) CreateObjectiveCalls() []struct {
	Ctx   context.Context
	Input goal.CreateObjectiveInput
} {
	mock.lockCreateObjective.RLock()
	calls := mock.calls.CreateObjective
	mock.lockCreateObjective.RUnlock()
	return calls
}

func (mock *goalServiceMock) BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error) {
	if mock.BulkDeleteFunc == nil {
		panic("goalServiceMock.BulkDeleteFunc: method is nil but goalService.BulkDelete was just called")
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

func (mock *goalServiceMock) BulkDeleteCalls() []struct {
	Ctx context.Context
	Ids []string
} {
	mock.lockBulkDelete.RLock()
	calls := mock.calls.BulkDelete
	mock.lockBulkDelete.RUnlock()
	return calls
}
