package scoreservice

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"
)

// History returns the user's scores newest first.
func (s *ScoreService) History(ctx context.Context, userID int64, since *time.Time) ([]scoredb.Score, error) {
	result, err := operation.Run(s.run, ctx, "History", strconv.FormatInt(userID, 10), nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]scoredb.Score, error], error) {
			scores, err := s.repo.ListHistory(ctx, db, userID, since)
			if err != nil {
				return results.OperationResult[[]scoredb.Score, error]{}, fmt.Errorf("failed to list score history: %w", err)
			}
			if scores == nil {
				scores = []scoredb.Score{}
			}
			return results.SuccessResult[[]scoredb.Score, error](scores), nil
		})
	return operation.Collapse(result, err)
}

// HistoryChart renders the user's whole history, oldest first.
func (s *ScoreService) HistoryChart(ctx context.Context, userID int64) ([]byte, error) {
	result, err := operation.Run(s.run, ctx, "HistoryChart", strconv.FormatInt(userID, 10), nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]byte, error], error) {
			scores, err := s.repo.ListHistory(ctx, db, userID, nil)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to list score history: %w", err)
			}
			slices.Reverse(scores)

			png, err := GenerateHistoryChart(scores, s.palette)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to render history chart: %w", err)
			}
			return results.SuccessResult[[]byte, error](png), nil
		})
	return operation.Collapse(result, err)
}

var sinceLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseSince reads a history lower bound. It accepts RFC3339, a plain date,
// or English phrases such as "yesterday" or "2 weeks ago" relative to now.
// An empty string means no bound.
func ParseSince(raw string, now time.Time) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range sinceLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(strings.ToLower(raw), now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSince, err)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSince, raw)
	}
	t := r.Time
	return &t, nil
}
