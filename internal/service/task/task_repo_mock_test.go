package task

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"sync"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	ListFunc            func(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Task], error)
	GetByIDFunc         func(ctx context.Context, tenant string, id uuid.UUID) (domain.Task, error)
	ListByParentIDsFunc func(ctx context.Context, tenant string, parentIDs []uuid.UUID) ([]domain.Task, error)
	SubtaskStatesFunc   func(ctx context.Context, tenant string, parentID uuid.UUID) ([]domain.StatusProgress, error)
	ObjectiveStatesFunc func(ctx context.Context, tenant string, objectiveID uuid.UUID) ([]domain.StatusProgress, error)
	CreateFunc          func(ctx context.Context, t domain.Task) (domain.Task, error)
	UpdateFunc          func(ctx context.Context, tenant string, id uuid.UUID, p domain.TaskUpdateParams) (domain.Task, error)
	SetProgressFunc     func(ctx context.Context, tenant string, id uuid.UUID, sp domain.StatusProgress) (domain.Task, error)
	DeleteByIDsFunc     func(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		List []struct {
			Ctx  context.Context
			Pred domain.Predicate
			Page domain.Page
		}
		GetByID []struct {
			Ctx    context.Context
			Tenant string
			ID     uuid.UUID
		}
		ListByParentIDs []struct {
			Ctx       context.Context
			Tenant    string
			ParentIDs []uuid.UUID
		}
		SubtaskStates []struct {
			Ctx      context.Context
			Tenant   string
			ParentID uuid.UUID
		}
		ObjectiveStates []struct {
			Ctx         context.Context
			Tenant      string
			ObjectiveID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			T   domain.Task
		}
		Update []struct {
			Ctx    context.Context
			Tenant string
			ID     uuid.UUID
			P      domain.TaskUpdateParams
		}
		SetProgress []struct {
			Ctx    context.Context
			Tenant string
			ID     uuid.UUID
			Sp     domain.StatusProgress
		}
		DeleteByIDs []struct {
			Ctx    context.Context
			Tenant string
			Ids    []uuid.UUID
		}
	}
	lockList            sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListByParentIDs sync.RWMutex
	lockSubtaskStates   sync.RWMutex
	lockObjectiveStates sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdate          sync.RWMutex
	lockSetProgress     sync.RWMutex
	lockDeleteByIDs     sync.RWMutex
}

func (mock *taskRepoMock) List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Task], error) {
	if mock.ListFunc == nil {
		panic("taskRepoMock.ListFunc: method is nil but taskRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Pred domain.Predicate
		Page domain.Page
	}{Ctx: ctx, Pred: pred, Page: page}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, pred, page)
}

func (mock *taskRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Pred domain.Predicate
	Page domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *taskRepoMock) GetByID(ctx context.Context, tenant string, id uuid.UUID) (domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Tenant string
		ID     uuid.UUID
	}{Ctx: ctx, Tenant: tenant, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, tenant, id)
}

func (mock *taskRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	Tenant string
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *taskRepoMock) ListByParentIDs(ctx context.Context, tenant string, parentIDs []uuid.UUID) ([]domain.Task, error) {
	if mock.ListByParentIDsFunc == nil {
		panic("taskRepoMock.ListByParentIDsFunc: method is nil but taskRepo.ListByParentIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Tenant    string
		ParentIDs []uuid.UUID
	}{Ctx: ctx, Tenant: tenant, ParentIDs: parentIDs}
	mock.lockListByParentIDs.Lock()
	mock.calls.ListByParentIDs = append(mock.calls.ListByParentIDs, callInfo)
	mock.lockListByParentIDs.Unlock()
	return mock.ListByParentIDsFunc(ctx, tenant, parentIDs)
}

func (mock *taskRepoMock) ListByParentIDsCalls() []struct {
	Ctx       context.Context
	Tenant    string
	ParentIDs []uuid.UUID
} {
	mock.lockListByParentIDs.RLock()
	calls := mock.calls.ListByParentIDs
	mock.lockListByParentIDs.RUnlock()
	return calls
}

func (mock *taskRepoMock) SubtaskStates(ctx context.Context, tenant string, parentID uuid.UUID) ([]domain.StatusProgress, error) {
	if mock.SubtaskStatesFunc == nil {
		panic("taskRepoMock.SubtaskStatesFunc: method is nil but taskRepo.SubtaskStates was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Tenant   string
		ParentID uuid.UUID
	}{Ctx: ctx, Tenant: tenant, ParentID: parentID}
	mock.lockSubtaskStates.Lock()
	mock.calls.SubtaskStates = append(mock.calls.SubtaskStates, callInfo)
	mock.lockSubtaskStates.Unlock()
	return mock.SubtaskStatesFunc(ctx, tenant, parentID)
}

func (mock *taskRepoMock) SubtaskStatesCalls() []struct {
	Ctx      context.Context
	Tenant   string
	ParentID uuid.UUID
} {
	mock.lockSubtaskStates.RLock()
	calls := mock.calls.SubtaskStates
	mock.lockSubtaskStates.RUnlock()
	return calls
}

func (mock *taskRepoMock) ObjectiveStates(ctx context.Context, tenant string, objectiveID uuid.UUID) ([]domain.StatusProgress, error) {
	if mock.ObjectiveStatesFunc == nil {
		panic("taskRepoMock.ObjectiveStatesFunc: method is nil but taskRepo.ObjectiveStates was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Tenant      string
		ObjectiveID uuid.UUID
	}{Ctx: ctx, Tenant: tenant, ObjectiveID: objectiveID}
	mock.lockObjectiveStates.Lock()
	mock.calls.ObjectiveStates = append(mock.calls.ObjectiveStates, callInfo)
	mock.lockObjectiveStates.Unlock()
	return mock.ObjectiveStatesFunc(ctx, tenant, objectiveID)
}

func (mock *taskRepoMock) ObjectiveStatesCalls() []struct {
	Ctx         context.Context
	Tenant      string
	ObjectiveID uuid.UUID
} {
	mock.lockObjectiveStates.RLock()
	calls := mock.calls.ObjectiveStates
	mock.lockObjectiveStates.RUnlock()
	return calls
}

func (mock *taskRepoMock) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Task
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   domain.Task
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskRepoMock) Update(ctx context.Context, tenant string, id uuid.UUID, p domain.TaskUpdateParams) (domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Tenant string
		ID     uuid.UUID
		P      domain.TaskUpdateParams
	}{Ctx: ctx, Tenant: tenant, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, tenant, id, p)
}

func (mock *taskRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Tenant string
	ID     uuid.UUID
	P      domain.TaskUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *taskRepoMock) SetProgress(ctx context.Context, tenant string, id uuid.UUID, sp domain.StatusProgress) (domain.Task, error) {
	if mock.SetProgressFunc == nil {
		panic("taskRepoMock.SetProgressFunc: method is nil but taskRepo.SetProgress was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Tenant string
		ID     uuid.UUID
		Sp     domain.StatusProgress
	}{Ctx: ctx, Tenant: tenant, ID: id, Sp: sp}
	mock.lockSetProgress.Lock()
	mock.calls.SetProgress = append(mock.calls.SetProgress, callInfo)
	mock.lockSetProgress.Unlock()
	return mock.SetProgressFunc(ctx, tenant, id, sp)
}

func (mock *taskRepoMock) SetProgressCalls() []struct {
	Ctx    context.Context
	Tenant string
	ID     uuid.UUID
	Sp     domain.StatusProgress
} {
	mock.lockSetProgress.RLock()
	calls := mock.calls.SetProgress
	mock.lockSetProgress.RUnlock()
	return calls
}

func (mock *taskRepoMock) DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("taskRepoMock.DeleteByIDsFunc: method is nil but taskRepo.DeleteByIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Tenant string
		Ids    []uuid.UUID
	}{Ctx: ctx, Tenant: tenant, Ids: ids}
	mock.lockDeleteByIDs.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, callInfo)
	mock.lockDeleteByIDs.Unlock()
	return mock.DeleteByIDsFunc(ctx, tenant, ids)
}

func (mock *taskRepoMock) DeleteByIDsCalls() []struct {
	Ctx    context.Context
	Tenant string
	Ids    []uuid.UUID
} {
	mock.lockDeleteByIDs.RLock()
	calls := mock.calls.DeleteByIDs
	mock.lockDeleteByIDs.RUnlock()
	return calls
}
