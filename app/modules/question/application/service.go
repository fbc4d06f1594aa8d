package questionservice

import (
	"errors"
	"log/slog"

	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// DefaultRoundSize is used when the configured round size is not positive.
const DefaultRoundSize = 20

// QuestionService implements the Service interface.
type QuestionService struct {
	repo      questiondb.Repository
	logger    *slog.Logger
	run       *operation.Runner
	roundSize int
	queue     ImportEnqueuer
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(
	repo questiondb.Repository,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	roundSize int,
) (*QuestionService, error) {
	if repo == nil {
		return nil, errors.New("question repository is required")
	}
	if roundSize <= 0 {
		roundSize = DefaultRoundSize
	}
	runner := operation.NewRunner("QuestionService", logger, m, tracer, db)
	return &QuestionService{
		repo:      repo,
		logger:    runner.Logger,
		run:       runner,
		roundSize: roundSize,
	}, nil
}

// UseImportQueue routes SubmitImport through q. A nil q restores synchronous
// imports.
func (s *QuestionService) UseImportQueue(q ImportEnqueuer) {
	s.queue = q
}

var _ Service = (*QuestionService)(nil)
