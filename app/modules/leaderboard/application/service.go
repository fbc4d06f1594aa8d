package leaderboardservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	leaderboarddb "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// LeaderboardService implements the Service interface.
type LeaderboardService struct {
	repo   leaderboarddb.Repository
	logger *slog.Logger
	run    *operation.Runner
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	repo leaderboarddb.Repository,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) (*LeaderboardService, error) {
	if repo == nil {
		return nil, errors.New("leaderboard repository is required")
	}
	runner := operation.NewRunner("LeaderboardService", logger, m, tracer, db)
	return &LeaderboardService{
		repo:   repo,
		logger: runner.Logger,
		run:    runner,
	}, nil
}

var _ Service = (*LeaderboardService)(nil)

func (s *LeaderboardService) Cultivated(ctx context.Context) (Cultivated, error) {
	result, err := operation.Run(s.run, ctx, "Cultivated", "all", operation.ReadSnapshot,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[Cultivated, error], error) {
			total, err := s.repo.CountQuestions(ctx, db)
			if err != nil {
				return results.OperationResult[Cultivated, error]{}, fmt.Errorf("failed to count questions: %w", err)
			}
			if total == 0 {
				return results.SuccessResult[Cultivated, error](Cultivated{Status: StatusNoQuestions, Entries: []Entry{}}), nil
			}

			mastered, err := s.repo.MasteredUsers(ctx, db, total)
			if err != nil {
				return results.OperationResult[Cultivated, error]{}, fmt.Errorf("failed to find mastered users: %w", err)
			}
			if len(mastered) == 0 {
				return results.SuccessResult[Cultivated, error](Cultivated{Status: StatusNoMasteredUsers, Entries: []Entry{}}), nil
			}

			best, err := s.repo.BestScores(ctx, db, mastered)
			if err != nil {
				return results.OperationResult[Cultivated, error]{}, fmt.Errorf("failed to load best scores: %w", err)
			}

			entries, missing := Rank(mastered, best)
			for _, id := range missing {
				s.logger.WarnContext(ctx, "Mastered user has no recorded rounds, leaving off Cultivated list",
					attr.ExtractCorrelationID(ctx),
					attr.UserID(id),
				)
			}

			return results.SuccessResult[Cultivated, error](Cultivated{Status: StatusListed, Entries: entries}), nil
		})
	return operation.Collapse(result, err)
}
