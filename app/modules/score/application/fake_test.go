package scoreservice

import (
	"context"
	"sync/atomic"
	"time"

	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
)

type FakeScoreRepo struct {
	trace []string

	CreateScoreFunc    func(ctx context.Context, db bun.IDB, score *scoredb.Score) error
	IncrementStatsFunc func(ctx context.Context, db bun.IDB, userID int64, answers []scoredb.Answer, at time.Time) error
	ListHistoryFunc    func(ctx context.Context, db bun.IDB, userID int64, since *time.Time) ([]scoredb.Score, error)
	GetStatsFunc       func(ctx context.Context, db bun.IDB, userID int64) ([]scoredb.QuestionStat, error)
}

func NewFakeScoreRepo() *FakeScoreRepo {
	return &FakeScoreRepo{trace: []string{}}
}

func (f *FakeScoreRepo) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeScoreRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreRepo) CreateScore(ctx context.Context, db bun.IDB, score *scoredb.Score) error {
	f.record("CreateScore")
	if f.CreateScoreFunc != nil {
		return f.CreateScoreFunc(ctx, db, score)
	}
	score.ID = 1
	return nil
}

func (f *FakeScoreRepo) IncrementStats(ctx context.Context, db bun.IDB, userID int64, answers []scoredb.Answer, at time.Time) error {
	f.record("IncrementStats")
	if f.IncrementStatsFunc != nil {
		return f.IncrementStatsFunc(ctx, db, userID, answers, at)
	}
	return nil
}

func (f *FakeScoreRepo) ListHistory(ctx context.Context, db bun.IDB, userID int64, since *time.Time) ([]scoredb.Score, error) {
	f.record("ListHistory")
	if f.ListHistoryFunc != nil {
		return f.ListHistoryFunc(ctx, db, userID, since)
	}
	return nil, nil
}

func (f *FakeScoreRepo) GetStats(ctx context.Context, db bun.IDB, userID int64) ([]scoredb.QuestionStat, error) {
	f.record("GetStats")
	if f.GetStatsFunc != nil {
		return f.GetStatsFunc(ctx, db, userID)
	}
	return nil, nil
}

var _ scoredb.Repository = (*FakeScoreRepo)(nil)

// FakeScoreMetrics counts score metric calls.
type FakeScoreMetrics struct {
	submitted  atomic.Int64
	mismatches atomic.Int64
}

func (m *FakeScoreMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (m *FakeScoreMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (m *FakeScoreMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (m *FakeScoreMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (m *FakeScoreMetrics) RecordRoundSubmitted(context.Context, int, int)                         { m.submitted.Add(1) }
func (m *FakeScoreMetrics) RecordScoreMismatch(context.Context)                                    { m.mismatches.Add(1) }
