package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Task     *TaskHandler
	Goal     *GoalHandler
	Register *RegisterHandler
	Period   *PeriodHandler
}

// NewRouter registers all routes on a ServeMux using method patterns.
// Unknown paths answer 404 and wrong methods 405 via the mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/tasks", h.Task.List)
	mux.HandleFunc("POST /api/tasks", h.Task.Create)
	mux.HandleFunc("PATCH /api/tasks/{id}", h.Task.Update)
	mux.HandleFunc("DELETE /api/tasks", h.Task.Delete)

	mux.HandleFunc("GET /api/goals", h.Goal.List)
	mux.HandleFunc("POST /api/goals", h.Goal.Create)
	mux.HandleFunc("POST /api/goals/{id}/objectives", h.Goal.CreateObjective)
	mux.HandleFunc("DELETE /api/goals", h.Goal.Delete)

	mux.HandleFunc("GET /api/risks", h.Register.ListRisks)
	mux.HandleFunc("POST /api/risks", h.Register.CreateRisk)
	mux.HandleFunc("DELETE /api/risks", h.Register.DeleteRisks)

	mux.HandleFunc("GET /api/challenges", h.Register.ListChallenges)
	mux.HandleFunc("POST /api/challenges", h.Register.CreateChallenge)
	mux.HandleFunc("DELETE /api/challenges", h.Register.DeleteChallenges)

	mux.HandleFunc("GET /api/periods", h.Period.List)
	mux.HandleFunc("POST /api/periods", h.Period.Create)
	mux.HandleFunc("POST /api/periods/{id}/complete", h.Period.Complete)
	mux.HandleFunc("DELETE /api/periods", h.Period.Delete)

	return mux
}
