package goal

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"sync"
)

var _ goalRepo = &goalRepoMock{}

type goalRepoMock struct {
	ListFunc        func(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Goal], error)
	GetByIDFunc     func(ctx context.Context, tenant string, id uuid.UUID) (domain.Goal, error)
	CreateFunc      func(ctx context.Context, g domain.Goal) (domain.Goal, error)
	DeleteByIDsFunc func(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error)

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
			G   domain.Goal
		}
		DeleteByIDs []struct {
			Ctx    context.Context
			Tenant string
			Ids    []uuid.UUID
		}
	}
	lockList        sync.RWMutex
	lockGetByID     sync.RWMutex
	lockCreate      sync.RWMutex
	lockDeleteByIDs sync.RWMutex
}

func (mock *goalRepoMock) List(ctx context.Context, pred domain.Predicate, page domain.Page) (domain.PageResult[domain.Goal], error) {
	if mock.ListFunc == nil {
		panic("goalRepoMock.ListFunc: method is nil but goalRepo.List was just called")
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

func (mock *goalRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Pred domain.Predicate
	Page domain.Page
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *goalRepoMock) GetByID(ctx context.Context, tenant string, id uuid.UUID) (domain.Goal, error) {
	if mock.GetByIDFunc == nil {
		panic("goalRepoMock.GetByIDFunc: method is nil but goalRepo.GetByID was just called")
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

func (mock *goalRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	Tenant string
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *goalRepoMock) Create(ctx context.Context, g domain.Goal) (domain.Goal, error) {
	if mock.CreateFunc == nil {
		panic("goalRepoMock.CreateFunc: method is nil but goalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.Goal
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *goalRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   domain.Goal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *goalRepoMock) DeleteByIDs(ctx context.Context, tenant string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("goalRepoMock.DeleteByIDsFunc: method is nil but goalRepo.DeleteByIDs was just called")
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

func (mock *goalRepoMock) DeleteByIDsCalls() []struct {
	Ctx    context.Context
	Tenant string
	Ids    []uuid.UUID
} {
	mock.lockDeleteByIDs.RLock()
	calls := mock.calls.DeleteByIDs
	mock.lockDeleteByIDs.RUnlock()
	return calls
}
