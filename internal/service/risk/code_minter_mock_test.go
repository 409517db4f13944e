package risk

import (
	"context"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"sync"
)

var _ codeMinter = &codeMinterMock{}

type codeMinterMock struct {
	NextFunc func(ctx context.Context, tenant string, kind domain.EntityKind) (string, error)

	calls struct {
		Next []struct {
			Ctx    context.Context
			Tenant string
			Kind   domain.EntityKind
		}
	}
	lockNext sync.RWMutex
}

func (mock *codeMinterMock) Next(ctx context.Context, tenant string, kind domain.EntityKind) (string, error) {
	if mock.NextFunc == nil {
		panic("codeMinterMock.NextFunc: method is nil but codeMinter.Next was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Tenant string
		Kind   domain.EntityKind
	}{Ctx: ctx, Tenant: tenant, Kind: kind}
	mock.lockNext.Lock()
	mock.calls.Next = append(mock.calls.Next, callInfo)
	mock.lockNext.Unlock()
	return mock.NextFunc(ctx, tenant, kind)
}

func (mock *codeMinterMock) NextCalls() []struct {
	Ctx    context.Context
	Tenant string
	Kind   domain.EntityKind
} {
	mock.lockNext.RLock()
	calls := mock.calls.Next
	mock.lockNext.RUnlock()
	return calls
}
