package question

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	authdomain "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/auth/infrastructure/handlers"
	questionservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/application"
	questionhandlers "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/handlers"
	questionqueue "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/queue"
	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability"
	"github.com/Black-And-White-Club/budtender-trivia/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

const queueStopTimeout = 30 * time.Second

// Module represents the question bank module.
type Module struct {
	service    questionservice.Service
	handlers   questionhandlers.Handlers
	queue      *questionqueue.Service
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates the question module. Players get /api/trivia/questions;
// admins get the /api/questions bank management routes. When the queue is
// enabled spreadsheet imports run on River.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	repo questiondb.Repository,
	httpRouter chi.Router,
	guard *authhandlers.Guard,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("question")

	logger.InfoContext(ctx, "Initializing question module")

	service, err := questionservice.NewQuestionService(repo, logger, obs.Metrics, tracer, db, cfg.Trivia.RoundSize)
	if err != nil {
		return nil, err
	}

	var queue *questionqueue.Service
	if cfg.Queue.Enabled {
		queue, err = questionqueue.NewService(ctx, cfg.Postgres.DSN, logger, obs.Metrics, service)
		if err != nil {
			return nil, fmt.Errorf("failed to create question queue: %w", err)
		}
		service.UseImportQueue(queue)
	}

	handlers := questionhandlers.NewQuestionHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Route("/api/trivia", func(r chi.Router) {
			r.Use(guard.RequireToken)
			r.Get("/questions", handlers.HandleNextRound)
		})

		httpRouter.Route("/api/questions", func(r chi.Router) {
			r.Use(guard.RequireToken)
			r.Use(guard.RequireRole(authdomain.RoleAdmin))

			r.Get("/all", handlers.HandleListQuestions)
			r.Get("/categories", handlers.HandleListCategories)
			r.Get("/export", handlers.HandleExport)
			r.Post("/import", handlers.HandleImport)
			r.Put("/{id}", handlers.HandleUpdateQuestion)
		})
	}

	return &Module{
		service:  service,
		handlers: handlers,
		queue:    queue,
		logger:   logger,
	}, nil
}

// GetService returns the question service.
func (m *Module) GetService() questionservice.Service {
	return m.service
}

// Run starts the import queue, if any, and blocks until ctx is done.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.InfoContext(ctx, "Starting question module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if m.queue != nil {
		if err := m.queue.Start(context.WithoutCancel(ctx)); err != nil {
			m.logger.ErrorContext(ctx, "Failed to start question queue", "error", err)
			return
		}
	}

	<-ctx.Done()

	if m.queue != nil {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), queueStopTimeout)
		defer stopCancel()
		if err := m.queue.Stop(stopCtx); err != nil {
			m.logger.Error("Error stopping question queue", "error", err)
		}
	}
	m.logger.Info("Question module goroutine stopped")
}

// Close stops the question module.
func (m *Module) Close() error {
	m.logger.Info("Stopping question module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Question module stopped")
	return nil
}
