package period

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	UnlinkOpenInPeriodFunc       func(ctx context.Context, tenant string, periodID uuid.UUID) (int64, error)
	ArchiveCompletedInPeriodFunc func(ctx context.Context, tenant string, periodID uuid.UUID) (int64, error)
	DetachPeriodsFunc            func(ctx context.Context, tenant string, periodIDs []uuid.UUID) error

	calls struct {
		UnlinkOpenInPeriod []struct {
			Ctx      context.Context
			Tenant   string
			PeriodID uuid.UUID
		}
		ArchiveCompletedInPeriod []struct {
			Ctx      context.Context
			Tenant   string
			PeriodID uuid.UUID
		}
		DetachPeriods []struct {
			Ctx       context.Context
			Tenant    string
			PeriodIDs []uuid.UUID
		}
	}
	lockUnlinkOpenInPeriod       sync.RWMutex
	lockArchiveCompletedInPeriod sync.RWMutex
	lockDetachPeriods            sync.RWMutex
}

func (mock *taskRepoMock) UnlinkOpenInPeriod(ctx context.Context, tenant string, periodID uuid.UUID) (int64, error) {
	if mock.UnlinkOpenInPeriodFunc == nil {
		panic("taskRepoMock.UnlinkOpenInPeriodFunc: method is nil but taskRepo.UnlinkOpenInPeriod was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Tenant   string
		PeriodID uuid.UUID
	}{Ctx: ctx, Tenant: tenant, PeriodID: periodID}
	mock.lockUnlinkOpenInPeriod.Lock()
	mock.calls.UnlinkOpenInPeriod = append(mock.calls.UnlinkOpenInPeriod, callInfo)
	mock.lockUnlinkOpenInPeriod.Unlock()
	return mock.UnlinkOpenInPeriodFunc(ctx, tenant, periodID)
}

func (mock *taskRepoMock) UnlinkOpenInPeriodCalls() []struct {
	Ctx      context.Context
	Tenant   string
	PeriodID uuid.UUID
} {
	mock.lockUnlinkOpenInPeriod.RLock()
	calls := mock.calls.UnlinkOpenInPeriod
	mock.lockUnlinkOpenInPeriod.RUnlock()
	return calls
}

func (mock *taskRepoMock) ArchiveCompletedInPeriod(ctx context.Context, tenant string, periodID uuid.UUID) (int64, error) {
	if mock.ArchiveCompletedInPeriodFunc == nil {
		panic("taskRepoMock.ArchiveCompletedInPeriodFunc: method is nil but taskRepo.ArchiveCompletedInPeriod was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Tenant   string
		PeriodID uuid.UUID
	}{Ctx: ctx, Tenant: tenant, PeriodID: periodID}
	mock.lockArchiveCompletedInPeriod.Lock()
	mock.calls.ArchiveCompletedInPeriod = append(mock.calls.ArchiveCompletedInPeriod, callInfo)
	mock.lockArchiveCompletedInPeriod.Unlock()
	return mock.ArchiveCompletedInPeriodFunc(ctx, tenant, periodID)
}

func (mock *taskRepoMock) ArchiveCompletedInPeriodCalls() []struct {
	Ctx      context.Context
	Tenant   string
	PeriodID uuid.UUID
} {
	mock.lockArchiveCompletedInPeriod.RLock()
	calls := mock.calls.ArchiveCompletedInPeriod
	mock.lockArchiveCompletedInPeriod.RUnlock()
	return calls
}

func (mock *taskRepoMock) DetachPeriods(ctx context.Context, tenant string, periodIDs []uuid.UUID) error {
	if mock.DetachPeriodsFunc == nil {
		panic("taskRepoMock.DetachPeriodsFunc: method is nil but taskRepo.DetachPeriods was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Tenant    string
		PeriodIDs []uuid.UUID
	}{Ctx: ctx, Tenant: tenant, PeriodIDs: periodIDs}
	mock.lockDetachPeriods.Lock()
	mock.calls.DetachPeriods = append(mock.calls.DetachPeriods, callInfo)
	mock.lockDetachPeriods.Unlock()
	return mock.DetachPeriodsFunc(ctx, tenant, periodIDs)
}

func (mock *taskRepoMock) DetachPeriodsCalls() []struct {
	Ctx       context.Context
	Tenant    string
	PeriodIDs []uuid.UUID
} {
	mock.lockDetachPeriods.RLock()
	calls := mock.calls.DetachPeriods
	mock.lockDetachPeriods.RUnlock()
	return calls
}
