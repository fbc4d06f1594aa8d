package questionqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	questionservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/application"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const serviceName = "river"

// Service runs the question import queue on River.
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	metrics metrics.OperationMetrics
}

var _ questionservice.ImportEnqueuer = (*Service)(nil)

// NewService connects a pgx pool for River and registers the import worker.
func NewService(ctx context.Context, dsn string, logger *slog.Logger, m metrics.OperationMetrics, importer Importer) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("operation", "new_question_queue_service"),
		attr.String("component", "river_queue"),
	)
	if m == nil {
		m = metrics.NewNoop()
	}

	start := time.Now()
	m.RecordOperationAttempt(ctx, "initialize_service", serviceName)
	ctxLogger.Info("Initializing question queue service")

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		m.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		m.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		m.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewImportWorker(ctxLogger, importer))

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			QueueName: {MaxWorkers: 2},
		},
		Workers: workers,
		Logger:  logger,
	})
	if err != nil {
		pool.Close()
		m.RecordOperationFailure(ctx, "initialize_service", serviceName)
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	m.RecordOperationSuccess(ctx, "initialize_service", serviceName)
	m.RecordOperationDuration(ctx, "initialize_service", serviceName, time.Since(start))
	ctxLogger.Info("Question queue service initialized successfully")

	return &Service{
		client:  client,
		pool:    pool,
		logger:  ctxLogger,
		metrics: m,
	}, nil
}

// Start starts processing jobs.
func (s *Service) Start(ctx context.Context) error {
	s.logger.Info("Starting question queue service")
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	return nil
}

// Stop waits for running jobs and releases the pool.
func (s *Service) Stop(ctx context.Context) error {
	s.logger.Info("Stopping question queue service")
	defer s.pool.Close()
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	return nil
}

// EnqueueImport inserts an ImportJob and returns its id.
func (s *Service) EnqueueImport(ctx context.Context, fileName string, data []byte) (int64, error) {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "enqueue_import", serviceName)

	res, err := s.client.Insert(ctx, ImportJob{FileName: fileName, Data: data}, nil)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "enqueue_import", serviceName)
		return 0, fmt.Errorf("failed to insert import job: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "enqueue_import", serviceName)
	s.metrics.RecordOperationDuration(ctx, "enqueue_import", serviceName, time.Since(start))
	s.logger.InfoContext(ctx, "Question import job enqueued",
		attr.ExtractCorrelationID(ctx),
		attr.Int64("job_id", res.Job.ID),
		attr.String("file_name", fileName),
	)
	return res.Job.ID, nil
}

// HealthCheck pings the queue's pool.
func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("queue database unreachable: %w", err)
	}
	return nil
}
