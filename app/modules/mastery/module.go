package mastery

import (
	"context"
	"log/slog"
	"sync"

	authhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/handlers"
	masteryservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/application"
	masteryhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/infrastructure/handlers"
	masterydb "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the mastery statistics module.
type Module struct {
	service    masteryservice.Service
	handlers   masteryhandlers.Handlers
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates the mastery module and mounts /api/stats.
func NewModule(
	ctx context.Context,
	obs observability.Observability,
	repo masterydb.Repository,
	httpRouter chi.Router,
	guard *authhandlers.Guard,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("mastery")

	logger.InfoContext(ctx, "Initializing mastery module")

	service, err := masteryservice.NewMasteryService(repo, logger, obs.Metrics, tracer, db)
	if err != nil {
		return nil, err
	}

	handlers := masteryhandlers.NewMasteryHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Route("/api/stats", func(r chi.Router) {
			r.Use(guard.RequireToken)
			r.Get("/summary", handlers.HandleSummary)
			r.Get("/mastery-by-subcategory", handlers.HandleSubCategoryMastery)
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
		logger:   logger,
	}, nil
}

// GetService returns the mastery service.
func (m *Module) GetService() masteryservice.Service {
	return m.service
}

// Run blocks until ctx is done.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.InfoContext(ctx, "Starting mastery module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Mastery module goroutine stopped")
}

// Close stops the mastery module.
func (m *Module) Close() error {
	m.logger.Info("Stopping mastery module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Mastery module stopped")
	return nil
}
