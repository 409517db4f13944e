package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

//go:generate moq -out task_service_mock_test.go -pkg rest . taskService
//go:generate moq -out goal_service_mock_test.go -pkg rest . goalService
//go:generate moq -out risk_service_mock_test.go -pkg rest . riskService
//go:generate moq -out challenge_service_mock_test.go -pkg rest . challengeService
//go:generate moq -out period_service_mock_test.go -pkg rest . periodService

type testMocks struct {
	task      *taskServiceMock
	goal      *goalServiceMock
	risk      *riskServiceMock
	challenge *challengeServiceMock
	period    *periodServiceMock
}

func newTestRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := &testMocks{
		task:      &taskServiceMock{},
		goal:      &goalServiceMock{},
		risk:      &riskServiceMock{},
		challenge: &challengeServiceMock{},
		period:    &periodServiceMock{},
	}
	router := NewRouter(Handlers{
		Health:   NewHealthHandler("test", nil),
		Task:     NewTaskHandler(m.task, log),
		Goal:     NewGoalHandler(m.goal, log),
		Register: NewRegisterHandler(m.risk, m.challenge, log),
		Period:   NewPeriodHandler(m.period, log),
	})
	return m, router
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func ptr[T any](v T) *T { return &v }
