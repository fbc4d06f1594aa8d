package leaderboard

import (
	"context"
	"log/slog"
	"sync"

	leaderboardservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/infrastructure/handlers"
	leaderboarddb "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the leaderboard module.
type Module struct {
	service    leaderboardservice.Service
	handlers   leaderboardhandlers.Handlers
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates the leaderboard module. The Cultivated list is public.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	repo leaderboarddb.Repository,
	httpRouter chi.Router,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("leaderboard")

	logger.InfoContext(ctx, "Initializing leaderboard module")

	service, err := leaderboardservice.NewLeaderboardService(repo, logger, obs.Metrics, tracer, db)
	if err != nil {
		return nil, err
	}

	handlers := leaderboardhandlers.NewLeaderboardHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Get("/api/scores/cultivated", handlers.HandleCultivated)
	}

	return &Module{
		service:  service,
		handlers: handlers,
		logger:   logger,
	}, nil
}

// GetService returns the leaderboard service.
func (m *Module) GetService() leaderboardservice.Service {
	return m.service
}

// Run blocks until ctx is done.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.InfoContext(ctx, "Starting leaderboard module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Leaderboard module goroutine stopped")
}

// Close stops the leaderboard module.
func (m *Module) Close() error {
	m.logger.Info("Stopping leaderboard module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Leaderboard module stopped")
	return nil
}
