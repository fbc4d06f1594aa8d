package score

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	authhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/handlers"
	scoreservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/application"
	scorehandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/handlers"
	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the score module.
type Module struct {
	service    scoreservice.Service
	handlers   scorehandlers.Handlers
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates the score module and mounts the /api/scores routes it
// owns. The leaderboard module shares the prefix, so routes are registered
// individually rather than through a sub-router.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	repo scoredb.Repository,
	httpRouter chi.Router,
	guard *authhandlers.Guard,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("score")

	logger.InfoContext(ctx, "Initializing score module")

	scoreMetrics := metrics.NewNoopScore()
	if obs.Registry != nil {
		m, err := metrics.NewPrometheusScoreMetrics(obs.Registry, observability.MetricsNamespace, obs.Metrics)
		if err != nil {
			return nil, fmt.Errorf("failed to register score metrics: %w", err)
		}
		scoreMetrics = m
	}

	service, err := scoreservice.NewScoreService(repo, logger, scoreMetrics, tracer, db)
	if err != nil {
		return nil, err
	}

	handlers := scorehandlers.NewScoreHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Group(func(r chi.Router) {
			r.Use(guard.RequireToken)

			r.Post("/api/scores", handlers.HandleSubmitRound)
			r.Get("/api/scores/history", handlers.HandleHistory)
			r.Get("/api/scores/my-history", handlers.HandleHistory)
			r.Get("/api/scores/history/chart", handlers.HandleHistoryChart)
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
		logger:   logger,
	}, nil
}

// GetService returns the score service.
func (m *Module) GetService() scoreservice.Service {
	return m.service
}

// Run blocks until ctx is done.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.InfoContext(ctx, "Starting score module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Score module goroutine stopped")
}

// Close stops the score module.
func (m *Module) Close() error {
	m.logger.Info("Stopping score module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Score module stopped")
	return nil
}
