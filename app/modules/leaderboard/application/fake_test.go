package leaderboardservice

import (
	"context"

	leaderboarddb "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/infrastructure/repositories"
	"github.com/uptrace/bun"
)

type FakeLeaderboardRepo struct {
	trace []string

	CountQuestionsFunc func(ctx context.Context, db bun.IDB) (int, error)
	MasteredUsersFunc  func(ctx context.Context, db bun.IDB, required int) ([]int64, error)
	BestScoresFunc     func(ctx context.Context, db bun.IDB, userIDs []int64) ([]leaderboarddb.BestScore, error)
}

func NewFakeLeaderboardRepo() *FakeLeaderboardRepo {
	return &FakeLeaderboardRepo{trace: []string{}}
}

func (f *FakeLeaderboardRepo) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeLeaderboardRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeLeaderboardRepo) CountQuestions(ctx context.Context, db bun.IDB) (int, error) {
	f.record("CountQuestions")
	if f.CountQuestionsFunc != nil {
		return f.CountQuestionsFunc(ctx, db)
	}
	return 0, nil
}

func (f *FakeLeaderboardRepo) MasteredUsers(ctx context.Context, db bun.IDB, required int) ([]int64, error) {
	f.record("MasteredUsers")
	if f.MasteredUsersFunc != nil {
		return f.MasteredUsersFunc(ctx, db, required)
	}
	return nil, nil
}

func (f *FakeLeaderboardRepo) BestScores(ctx context.Context, db bun.IDB, userIDs []int64) ([]leaderboarddb.BestScore, error) {
	f.record("BestScores")
	if f.BestScoresFunc != nil {
		return f.BestScoresFunc(ctx, db, userIDs)
	}
	return nil, nil
}

var _ leaderboarddb.Repository = (*FakeLeaderboardRepo)(nil)
