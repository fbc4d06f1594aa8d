package scoreservice

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
)

// SubmitRound stores the round with the recomputed score. A claimed score
// that disagrees with the results is logged and replaced.
func (s *ScoreService) SubmitRound(ctx context.Context, userID int64, sub Submission) (*scoredb.Score, error) {
	result, err := operation.WithTelemetry(s.run, ctx, "SubmitRound", strconv.FormatInt(userID, 10),
		func(ctx context.Context) (results.OperationResult[*scoredb.Score, error], error) {
			// Rejected payloads never reach the database.
			valid, err := sub.validate()
			if err != nil {
				return results.FailureResult[*scoredb.Score, error](err), nil
			}

			if float64(valid.computed) != valid.claimed {
				s.logger.WarnContext(ctx, "Claimed score does not match results, using computed score",
					attr.ExtractCorrelationID(ctx),
					attr.UserID(userID),
					attr.Float64("claimed_score", valid.claimed),
					attr.Int("computed_score", valid.computed),
				)
				s.metrics.RecordScoreMismatch(ctx)
			}

			return operation.RunInTx(s.run, ctx, nil, func(ctx context.Context, db bun.IDB) (results.OperationResult[*scoredb.Score, error], error) {
				return s.recordRound(ctx, db, userID, valid)
			})
		})
	score, err := operation.Collapse(result, err)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRoundSubmitted(ctx, score.TotalQuestions, score.Score)
	return score, nil
}

// recordRound writes the score row and the statistic upserts of one
// validated round.
func (s *ScoreService) recordRound(ctx context.Context, db bun.IDB, userID int64, valid validSubmission) (results.OperationResult[*scoredb.Score, error], error) {
	now := s.now().UTC()
	score := &scoredb.Score{
		UserID:         userID,
		Score:          valid.computed,
		TotalQuestions: valid.total,
		Percentage:     Percentage(valid.computed, valid.total),
		CreatedAt:      now,
	}
	if err := s.repo.CreateScore(ctx, db, score); err != nil {
		return results.OperationResult[*scoredb.Score, error]{}, fmt.Errorf("failed to create score: %w", err)
	}

	// Upserts run in question id order.
	answers := valid.answers
	sort.SliceStable(answers, func(i, j int) bool { return answers[i].QuestionID < answers[j].QuestionID })

	if err := s.repo.IncrementStats(ctx, db, userID, answers, now); err != nil {
		return results.OperationResult[*scoredb.Score, error]{}, fmt.Errorf("failed to update question stats: %w", err)
	}

	s.logger.InfoContext(ctx, "Round recorded",
		attr.ExtractCorrelationID(ctx),
		attr.UserID(userID),
		attr.Int64("score_id", score.ID),
		attr.Int("score", score.Score),
		attr.Int("total_questions", score.TotalQuestions),
	)
	return results.SuccessResult[*scoredb.Score, error](score), nil
}
