package scoreservice

import (
	"errors"
	"log/slog"
	"time"

	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// ScoreService implements the Service interface.
type ScoreService struct {
	repo    scoredb.Repository
	logger  *slog.Logger
	metrics metrics.ScoreMetrics
	run     *operation.Runner
	palette ChartPalette
	now     func() time.Time
}

// NewScoreService creates a new ScoreService.
func NewScoreService(
	repo scoredb.Repository,
	logger *slog.Logger,
	m metrics.ScoreMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) (*ScoreService, error) {
	if repo == nil {
		return nil, errors.New("score repository is required")
	}
	if m == nil {
		m = metrics.NewNoopScore()
	}
	runner := operation.NewRunner("ScoreService", logger, m, tracer, db)
	return &ScoreService{
		repo:    repo,
		logger:  runner.Logger,
		metrics: m,
		run:     runner,
		palette: DefaultPalette,
		now:     time.Now,
	}, nil
}

var _ Service = (*ScoreService)(nil)
