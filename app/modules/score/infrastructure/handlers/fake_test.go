package scorehandlers

import (
	"context"
	"time"

	scoreservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/application"
	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
)

type FakeService struct {
	SubmitRoundFunc  func(ctx context.Context, userID int64, sub scoreservice.Submission) (*scoredb.Score, error)
	HistoryFunc      func(ctx context.Context, userID int64, since *time.Time) ([]scoredb.Score, error)
	HistoryChartFunc func(ctx context.Context, userID int64) ([]byte, error)
}

func (f *FakeService) SubmitRound(ctx context.Context, userID int64, sub scoreservice.Submission) (*scoredb.Score, error) {
	if f.SubmitRoundFunc != nil {
		return f.SubmitRoundFunc(ctx, userID, sub)
	}
	return &scoredb.Score{}, nil
}

func (f *FakeService) History(ctx context.Context, userID int64, since *time.Time) ([]scoredb.Score, error) {
	if f.HistoryFunc != nil {
		return f.HistoryFunc(ctx, userID, since)
	}
	return []scoredb.Score{}, nil
}

func (f *FakeService) HistoryChart(ctx context.Context, userID int64) ([]byte, error) {
	if f.HistoryChartFunc != nil {
		return f.HistoryChartFunc(ctx, userID)
	}
	return nil, nil
}

var _ scoreservice.Service = (*FakeService)(nil)
