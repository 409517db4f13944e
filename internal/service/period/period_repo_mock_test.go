package period

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"sync"
)

var _ periodRepo = &periodRepoMock{}

type periodRepoMock struct {
	ListFunc          func(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Period], error)
	GetByIDFunc       func(ctx context.Context, tenant string, id uuid.UUID) (domain.Period, error)
	CreateFunc        func(ctx context.Context, p domain.Period) (domain.Period, error)
	MarkCompletedFunc func(ctx context.Context, tenant string, id uuid.UUID) (domain.Period, error)
	DeleteByIDsFunc   func(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error)

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
		Create []struct {
			Ctx context.Context
			P   domain.Period
		}
		MarkCompleted []struct {
			Ctx    context.Context
			Tenant string
			ID     uuid.UUID
		}
		DeleteByIDs []struct {
			Ctx    context.Context
			Tenant string
			Ids    []uuid.UUID
		}
	}
	lockList          sync.RWMutex
	lockGetByID       sync.RWMutex
	lockCreate        sync.RWMutex
	lockMarkCompleted sync.RWMutex
	lockDeleteByIDs   sync.RWMutex
}

func (mock *periodRepoMock) List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Period], error) {
	if mock.ListFunc == nil {
		panic("periodRepoMock.ListFunc: method is nil but periodRepo.List was just called")
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

func (mock *periodRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Pred domain.Predicate
	Page domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *periodRepoMock) GetByID(ctx context.Context, tenant string, id uuid.UUID) (domain.Period, error) {
	if mock.GetByIDFunc == nil {
		panic("periodRepoMock.GetByIDFunc: method is nil but periodRepo.GetByID was just called")
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

func (mock *periodRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	Tenant string
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *periodRepoMock) Create(ctx context.Context, p domain.Period) (domain.Period, error) {
	if mock.CreateFunc == nil {
		panic("periodRepoMock.CreateFunc: method is nil but periodRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Period
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *periodRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Period
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *periodRepoMock) MarkCompleted(ctx context.Context, tenant string, id uuid.UUID) (domain.Period, error) {
	if mock.MarkCompletedFunc == nil {
		panic("periodRepoMock.MarkCompletedFunc: method is nil but periodRepo.MarkCompleted was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Tenant string
		ID     uuid.UUID
	}{Ctx: ctx, Tenant: tenant, ID: id}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, tenant, id)
}

func (mock *periodRepoMock) MarkCompletedCalls() []struct {
	Ctx    context.Context
	Tenant string
	ID     uuid.UUID
} {
	mock.lockMarkCompleted.RLock()
	calls := mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}

func (mock *periodRepoMock) DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("periodRepoMock.DeleteByIDsFunc: method is nil but periodRepo.DeleteByIDs was just called")
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

func (mock *periodRepoMock) DeleteByIDsCalls() []struct {
	Ctx    context.Context
	Tenant string
	Ids    []uuid.UUID
} {
	mock.lockDeleteByIDs.RLock()
	calls := mock.calls.DeleteByIDs
	mock.lockDeleteByIDs.RUnlock()
	return calls
}
