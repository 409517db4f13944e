package rest

import (
	"context"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/internal/service/challenge"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"sync"
)

var _ challengeService = &challengeServiceMock{}

type challengeServiceMock struct {
	ListFunc            func(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Challenge], error)
	CreateChallengeFunc func(ctx context.Context, input challenge.CreateChallengeInput) (domain.Challenge, error)
	BulkDeleteFunc      func(ctx context.Context, ids []string) (domain.DeleteSummary, error)

	calls struct {
		List []struct {
			Ctx context.Context
			Raw listing.RawParams
		}
		CreateChallenge []struct {
			Ctx   context.Context
			Input challenge.CreateChallengeInput
		}
		BulkDelete []struct {
			Ctx context.Context
			Ids []string
		}
	}
	lockList            sync.RWMutex
	lockCreateChallenge sync.RWMutex
	lockBulkDelete      sync.RWMutex
}

func (mock *challengeServiceMock) List(ctx context.Context, raw listing.RawParams) (domain.PageResult[domain.Challenge], error) {
	if mock.ListFunc == nil {
		panic("challengeServiceMock.ListFunc: method is nil but challengeService.List was just called")
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

func (mock *challengeServiceMock) ListCalls() []struct {
	Ctx context.Context
	Raw listing.RawParams
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *challengeServiceMock) CreateChallenge(ctx context.Context, input challenge.CreateChallengeInput) (domain.Challenge, error) {
	if mock.CreateChallengeFunc == nil {
		panic("challengeServiceMock.CreateChallengeFunc: method is nil but challengeService.CreateChallenge was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input challenge.CreateChallengeInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateChallenge.Lock()
	mock.calls.CreateChallenge = append(mock.calls.CreateChallenge, callInfo)
	mock.lockCreateChallenge.Unlock()
	return mock.CreateChallengeFunc(ctx, input)
}

func (mock *challengeServiceMock) CreateChallengeCalls() []struct {
	Ctx   context.Context
	Input challenge.CreateChallengeInput
} {
	mock.lockCreateChallenge.RLock()
	calls := mock.calls.CreateChallenge
	mock.lockCreateChallenge.RUnlock()
	return calls
}

func (mock *challengeServiceMock) BulkDelete(ctx context.Context, ids []string) (domain.DeleteSummary, error) {
	if mock.BulkDeleteFunc == nil {
		panic("challengeServiceMock.BulkDeleteFunc: method is nil but challengeService.BulkDelete was just called")
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

func (mock *challengeServiceMock) BulkDeleteCalls() []struct {
	Ctx context.Context
	Ids []string
} {
	mock.lockBulkDelete.RLock()
	calls := mock.calls.BulkDelete
	mock.lockBulkDelete.RUnlock()
	return calls
}
