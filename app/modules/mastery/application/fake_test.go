package masteryservice

import (
	"context"

	masterydb "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/infrastructure/repositories"
	"github.com/uptrace/bun"
)

type FakeMasteryRepo struct {
	trace []string

	CountQuestionsFunc    func(ctx context.Context, db bun.IDB) (int, error)
	CategoryTotalsFunc    func(ctx context.Context, db bun.IDB) ([]masterydb.GroupTotal, error)
	SubCategoryTotalsFunc func(ctx context.Context, db bun.IDB) ([]masterydb.GroupTotal, error)
	CorrectQuestionsFunc  func(ctx context.Context, db bun.IDB, userID int64) ([]masterydb.CorrectQuestion, error)
}

func NewFakeMasteryRepo() *FakeMasteryRepo {
	return &FakeMasteryRepo{trace: []string{}}
}

func (f *FakeMasteryRepo) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeMasteryRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeMasteryRepo) CountQuestions(ctx context.Context, db bun.IDB) (int, error) {
	f.record("CountQuestions")
	if f.CountQuestionsFunc != nil {
		return f.CountQuestionsFunc(ctx, db)
	}
	return 0, nil
}

func (f *FakeMasteryRepo) CategoryTotals(ctx context.Context, db bun.IDB) ([]masterydb.GroupTotal, error) {
	f.record("CategoryTotals")
	if f.CategoryTotalsFunc != nil {
		return f.CategoryTotalsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeMasteryRepo) SubCategoryTotals(ctx context.Context, db bun.IDB) ([]masterydb.GroupTotal, error) {
	f.record("SubCategoryTotals")
	if f.SubCategoryTotalsFunc != nil {
		return f.SubCategoryTotalsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeMasteryRepo) CorrectQuestions(ctx context.Context, db bun.IDB, userID int64) ([]masterydb.CorrectQuestion, error) {
	f.record("CorrectQuestions")
	if f.CorrectQuestionsFunc != nil {
		return f.CorrectQuestionsFunc(ctx, db, userID)
	}
	return nil, nil
}

var _ masterydb.Repository = (*FakeMasteryRepo)(nil)
