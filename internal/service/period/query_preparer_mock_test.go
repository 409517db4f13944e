package period

import (
	"context"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"sync"
)

var _ queryPreparer = &queryPreparerMock{}

type queryPreparerMock struct {
	PrepareFunc func(ctx context.Context, kind domain.EntityKind, raw listing.RawParams) (listing.Query, error)

	calls struct {
		Prepare []struct {
			Ctx  context.Context
			Kind domain.EntityKind
			Raw  listing.RawParams
		}
	}
	lockPrepare sync.RWMutex
}

func (mock *queryPreparerMock) Prepare(ctx context.Context, kind domain.EntityKind, raw listing.RawParams) (listing.Query, error) {
	if mock.PrepareFunc == nil {
		panic("queryPreparerMock.PrepareFunc: method is nil but queryPreparer.Prepare was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.EntityKind
		Raw  listing.RawParams
	}{Ctx: ctx, Kind: kind, Raw: raw}
	mock.lockPrepare.Lock()
	mock.calls.Prepare = append(mock.calls.Prepare, callInfo)
	mock.lockPrepare.Unlock()
	return mock.PrepareFunc(ctx, kind, raw)
}

func (mock *queryPreparerMock) PrepareCalls() []struct {
	Ctx  context.Context
	Kind domain.EntityKind
	Raw  listing.RawParams
} {
	mock.lockPrepare.RLock()
	calls := mock.calls.Prepare
	mock.lockPrepare.RUnlock()
	return calls
}
