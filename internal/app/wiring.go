package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres"
	challengerepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/challenge"
	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/counter"
	goalrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/goal"
	"github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/objective"
	periodrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/period"
	riskrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/risk"
	taskrepo "github.com/heartmarshall/taskboard-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/taskboard-backend/internal/auth"
	"github.com/heartmarshall/taskboard-backend/internal/config"
	"github.com/heartmarshall/taskboard-backend/internal/service/challenge"
	"github.com/heartmarshall/taskboard-backend/internal/service/goal"
	"github.com/heartmarshall/taskboard-backend/internal/service/listing"
	"github.com/heartmarshall/taskboard-backend/internal/service/period"
	"github.com/heartmarshall/taskboard-backend/internal/service/risk"
	"github.com/heartmarshall/taskboard-backend/internal/service/task"
	"github.com/heartmarshall/taskboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/taskboard-backend/internal/transport/rest"
)

// NewHandler builds the full HTTP stack over pool: repositories, services,
// handlers, router and middleware. The returned stop func releases
// background resources and must be called on shutdown.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func(), error) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	tasks := taskrepo.New(pool)
	goals := goalrepo.New(pool)
	objectives := objective.New(pool)
	risks := riskrepo.New(pool)
	challenges := challengerepo.New(pool)
	periods := periodrepo.New(pool)
	codes := counter.New(pool)

	// Services.
	queries := listing.NewService(logger, periods, listing.Calendar{
		Location:     cfg.Calendar.Location,
		FirstWeekday: cfg.Calendar.FirstWeekday,
	}, cfg.List.PageSize)

	taskService := task.NewService(logger, tasks, objectives, codes, queries, txm)
	goalService := goal.NewService(logger, goals, objectives, codes, queries, txm)
	riskService := risk.NewService(logger, risks, codes, queries, txm)
	challengeService := challenge.NewService(logger, challenges, codes, queries, txm)
	periodService := period.NewService(logger, periods, tasks, goals, queries, txm)

	// Health.
	migrationCheck, err := postgres.MigrationCheck(pool)
	if err != nil {
		return nil, nil, err
	}
	health := rest.NewHealthHandler(BuildVersion(), map[string]rest.CheckFunc{
		"database":   pool.Ping,
		"migrations": migrationCheck,
	})

	router := rest.NewRouter(rest.Handlers{
		Health:   health,
		Task:     rest.NewTaskHandler(taskService, logger),
		Goal:     rest.NewGoalHandler(goalService, logger),
		Register: rest.NewRegisterHandler(riskService, challengeService, logger),
		Period:   rest.NewPeriodHandler(periodService, logger),
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(time.Minute)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		limiter.Limit(cfg.Server.RateLimit),
	)(router)

	return handler, limiter.Stop, nil
}
