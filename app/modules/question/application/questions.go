package questionservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
)

// NextRound picks the caller's next round of questions.
func (s *QuestionService) NextRound(ctx context.Context, userID int64) ([]questiondb.RoundQuestion, error) {
	result, err := operation.Run(s.run, ctx, "NextRound", strconv.FormatInt(userID, 10), nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]questiondb.RoundQuestion, error], error) {
			round, err := s.repo.SelectRound(ctx, db, userID, s.roundSize)
			if err != nil {
				return results.OperationResult[[]questiondb.RoundQuestion, error]{}, fmt.Errorf("failed to select round: %w", err)
			}
			if round == nil {
				round = []questiondb.RoundQuestion{}
			}
			return results.SuccessResult[[]questiondb.RoundQuestion, error](round), nil
		})
	return operation.Collapse(result, err)
}

// ListQuestions returns questions matching filter ordered by id.
func (s *QuestionService) ListQuestions(ctx context.Context, filter questiondb.AdminFilter) ([]questiondb.Question, error) {
	result, err := operation.Run(s.run, ctx, "ListQuestions", filter.Category, nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]questiondb.Question, error], error) {
			questions, err := s.repo.ListAdmin(ctx, db, filter)
			if err != nil {
				return results.OperationResult[[]questiondb.Question, error]{}, fmt.Errorf("failed to list questions: %w", err)
			}
			if questions == nil {
				questions = []questiondb.Question{}
			}
			return results.SuccessResult[[]questiondb.Question, error](questions), nil
		})
	return operation.Collapse(result, err)
}

// UpdateQuestion validates input and overwrites the stored question.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id int64, input QuestionInput) (*questiondb.Question, error) {
	result, err := operation.Run(s.run, ctx, "UpdateQuestion", strconv.FormatInt(id, 10), nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*questiondb.Question, error], error) {
			if err := ValidateInput(input.Question, input.Options, input.CorrectAnswer, input.Category); err != nil {
				return results.FailureResult[*questiondb.Question, error](err), nil
			}

			q, err := s.repo.GetByID(ctx, db, id)
			if err != nil {
				if errors.Is(err, questiondb.ErrNotFound) {
					return results.FailureResult[*questiondb.Question, error](ErrQuestionNotFound), nil
				}
				return results.OperationResult[*questiondb.Question, error]{}, fmt.Errorf("failed to load question: %w", err)
			}

			q.Question = input.Question
			q.Options = slices.Clone(input.Options)
			q.CorrectAnswer = input.CorrectAnswer
			q.Category = input.Category
			q.Explanation = nil
			if input.Explanation != "" {
				explanation := input.Explanation
				q.Explanation = &explanation
			}
			if input.SubCategory != nil {
				q.SubCategory = nil
				if sub := strings.TrimSpace(*input.SubCategory); sub != "" {
					q.SubCategory = &sub
				}
			}
			if input.Difficulty != nil && strings.TrimSpace(*input.Difficulty) != "" {
				q.Difficulty = strings.ToLower(strings.TrimSpace(*input.Difficulty))
			}

			if err := s.repo.Update(ctx, db, q); err != nil {
				if errors.Is(err, questiondb.ErrNotFound) {
					return results.FailureResult[*questiondb.Question, error](ErrQuestionNotFound), nil
				}
				return results.OperationResult[*questiondb.Question, error]{}, fmt.Errorf("failed to update question: %w", err)
			}

			s.logger.InfoContext(ctx, "Question updated",
				attr.ExtractCorrelationID(ctx),
				attr.Int64("question_id", id),
			)
			return results.SuccessResult[*questiondb.Question, error](q), nil
		})
	return operation.Collapse(result, err)
}

// ListCategories returns the distinct non-empty categories in ascending order.
func (s *QuestionService) ListCategories(ctx context.Context) ([]string, error) {
	result, err := operation.Run(s.run, ctx, "ListCategories", "all", nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]string, error], error) {
			categories, err := s.repo.DistinctCategories(ctx, db)
			if err != nil {
				return results.OperationResult[[]string, error]{}, fmt.Errorf("failed to list categories: %w", err)
			}
			if categories == nil {
				categories = []string{}
			}
			return results.SuccessResult[[]string, error](categories), nil
		})
	return operation.Collapse(result, err)
}

// ValidateInput enforces the question invariants shared by edits and imports.
func ValidateInput(question string, options []string, correctAnswer, category string) error {
	if question == "" || options == nil || correctAnswer == "" || category == "" {
		return ErrMissingFields
	}
	if len(options) < 2 {
		return ErrTooFewOptions
	}
	if !slices.Contains(options, correctAnswer) {
		return ErrAnswerNotInOptions
	}
	return nil
}
