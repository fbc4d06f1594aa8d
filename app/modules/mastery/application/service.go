package masteryservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	masterydb "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// MasteryService implements the Service interface.
type MasteryService struct {
	repo   masterydb.Repository
	logger *slog.Logger
	run    *operation.Runner
}

// NewMasteryService creates a new MasteryService.
func NewMasteryService(
	repo masterydb.Repository,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) (*MasteryService, error) {
	if repo == nil {
		return nil, errors.New("mastery repository is required")
	}
	runner := operation.NewRunner("MasteryService", logger, m, tracer, db)
	return &MasteryService{
		repo:   repo,
		logger: runner.Logger,
		run:    runner,
	}, nil
}

var _ Service = (*MasteryService)(nil)

// Summary reads the totals and the user's correct questions from a single
// snapshot and computes overall, category and sub-category mastery.
func (s *MasteryService) Summary(ctx context.Context, userID int64) (Summary, error) {
	result, err := operation.Run(s.run, ctx, "Summary", strconv.FormatInt(userID, 10), operation.ReadSnapshot,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[Summary, error], error) {
			total, err := s.repo.CountQuestions(ctx, db)
			if err != nil {
				return results.OperationResult[Summary, error]{}, fmt.Errorf("failed to count questions: %w", err)
			}
			if total == 0 {
				s.logger.InfoContext(ctx, "No questions available for mastery", attr.ExtractCorrelationID(ctx), attr.UserID(userID))
				return results.SuccessResult[Summary, error](ComputeSummary(Snapshot{})), nil
			}

			snap := Snapshot{TotalQuestions: total}
			if snap.CategoryTotals, err = s.repo.CategoryTotals(ctx, db); err != nil {
				return results.OperationResult[Summary, error]{}, fmt.Errorf("failed to count categories: %w", err)
			}
			if snap.SubCategoryTotals, err = s.repo.SubCategoryTotals(ctx, db); err != nil {
				return results.OperationResult[Summary, error]{}, fmt.Errorf("failed to count sub-categories: %w", err)
			}
			if snap.Correct, err = s.repo.CorrectQuestions(ctx, db, userID); err != nil {
				return results.OperationResult[Summary, error]{}, fmt.Errorf("failed to load correct answers: %w", err)
			}

			return results.SuccessResult[Summary, error](ComputeSummary(snap)), nil
		})
	return operation.Collapse(result, err)
}

// SubCategoryBreakdown returns per (category, sub-category) mastery rows.
func (s *MasteryService) SubCategoryBreakdown(ctx context.Context, userID int64) ([]SubCategoryMastery, error) {
	result, err := operation.Run(s.run, ctx, "SubCategoryBreakdown", strconv.FormatInt(userID, 10), operation.ReadSnapshot,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]SubCategoryMastery, error], error) {
			totals, err := s.repo.SubCategoryTotals(ctx, db)
			if err != nil {
				return results.OperationResult[[]SubCategoryMastery, error]{}, fmt.Errorf("failed to count sub-categories: %w", err)
			}
			correct, err := s.repo.CorrectQuestions(ctx, db, userID)
			if err != nil {
				return results.OperationResult[[]SubCategoryMastery, error]{}, fmt.Errorf("failed to load correct answers: %w", err)
			}
			return results.SuccessResult[[]SubCategoryMastery, error](ComputeSubCategoryBreakdown(totals, correct)), nil
		})
	return operation.Collapse(result, err)
}
