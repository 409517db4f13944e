package goal

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"sync"
)

var _ objectiveRepo = &objectiveRepoMock{}

type objectiveRepoMock struct {
	ListByGoalIDsFunc func(ctx context.Context, tenant string, goalIDs []uuid.UUID) ([]domain.Objective, error)
	CreateFunc        func(ctx context.Context, o domain.Objective) (domain.Objective, error)

	calls struct {
		ListByGoalIDs []struct {
			Ctx     context.Context
			Tenant  string
			GoalIDs []uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			O   domain.Objective
		}
	}
	lockListByGoalIDs sync.RWMutex
	lockCreate        sync.RWMutex
}

func (mock *objectiveRepoMock) ListByGoalIDs(ctx context.Context, tenant string, goalIDs []uuid.UUID) ([]domain.Objective, error) {
	if mock.ListByGoalIDsFunc == nil {
		panic("objectiveRepoMock.ListByGoalIDsFunc: method is nil but objectiveRepo.ListByGoalIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Tenant  string
		GoalIDs []uuid.UUID
	}{Ctx: ctx, Tenant: tenant, GoalIDs: goalIDs}
	mock.lockListByGoalIDs.Lock()
	mock.calls.ListByGoalIDs = append(mock.calls.ListByGoalIDs, callInfo)
	mock.lockListByGoalIDs.Unlock()
	return mock.ListByGoalIDsFunc(ctx, tenant, goalIDs)
}

func (mock *objectiveRepoMock) ListByGoalIDsCalls() []struct {
	Ctx     context.Context
	Tenant  string
	GoalIDs []uuid.UUID
} {
	mock.lockListByGoalIDs.RLock()
	calls := mock.calls.ListByGoalIDs
	mock.lockListByGoalIDs.RUnlock()
	return calls
}

func (mock *objectiveRepoMock) Create(ctx context.Context, o domain.Objective) (domain.Objective, error) {
	if mock.CreateFunc == nil {
		panic("objectiveRepoMock.CreateFunc: method is nil but objectiveRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		O   domain.Objective
	}{Ctx: ctx, O: o}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, o)
}

func (mock *objectiveRepoMock) CreateCalls() []struct {
	Ctx context.Context
	O   domain.Objective
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
