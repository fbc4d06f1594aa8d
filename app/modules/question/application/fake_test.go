package questionservice

import (
	"context"

	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	"github.com/uptrace/bun"
)

type FakeQuestionRepo struct {
	trace []string

	GetByIDFunc            func(ctx context.Context, db bun.IDB, id int64) (*questiondb.Question, error)
	UpdateFunc             func(ctx context.Context, db bun.IDB, q *questiondb.Question) error
	ListAdminFunc          func(ctx context.Context, db bun.IDB, filter questiondb.AdminFilter) ([]questiondb.Question, error)
	ListAllFunc            func(ctx context.Context, db bun.IDB) ([]questiondb.Question, error)
	DistinctCategoriesFunc func(ctx context.Context, db bun.IDB) ([]string, error)
	CountFunc              func(ctx context.Context, db bun.IDB) (int, error)
	InsertManyFunc         func(ctx context.Context, db bun.IDB, questions []questiondb.Question) error
	SelectRoundFunc        func(ctx context.Context, db bun.IDB, userID int64, limit int) ([]questiondb.RoundQuestion, error)
}

func NewFakeQuestionRepo() *FakeQuestionRepo {
	return &FakeQuestionRepo{trace: []string{}}
}

func (f *FakeQuestionRepo) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeQuestionRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeQuestionRepo) GetByID(ctx context.Context, db bun.IDB, id int64) (*questiondb.Question, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, questiondb.ErrNotFound
}

func (f *FakeQuestionRepo) Update(ctx context.Context, db bun.IDB, q *questiondb.Question) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, q)
	}
	return nil
}

func (f *FakeQuestionRepo) ListAdmin(ctx context.Context, db bun.IDB, filter questiondb.AdminFilter) ([]questiondb.Question, error) {
	f.record("ListAdmin")
	if f.ListAdminFunc != nil {
		return f.ListAdminFunc(ctx, db, filter)
	}
	return nil, nil
}

func (f *FakeQuestionRepo) ListAll(ctx context.Context, db bun.IDB) ([]questiondb.Question, error) {
	f.record("ListAll")
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeQuestionRepo) DistinctCategories(ctx context.Context, db bun.IDB) ([]string, error) {
	f.record("DistinctCategories")
	if f.DistinctCategoriesFunc != nil {
		return f.DistinctCategoriesFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeQuestionRepo) Count(ctx context.Context, db bun.IDB) (int, error) {
	f.record("Count")
	if f.CountFunc != nil {
		return f.CountFunc(ctx, db)
	}
	return 0, nil
}

func (f *FakeQuestionRepo) InsertMany(ctx context.Context, db bun.IDB, questions []questiondb.Question) error {
	f.record("InsertMany")
	if f.InsertManyFunc != nil {
		return f.InsertManyFunc(ctx, db, questions)
	}
	return nil
}

func (f *FakeQuestionRepo) SelectRound(ctx context.Context, db bun.IDB, userID int64, limit int) ([]questiondb.RoundQuestion, error) {
	f.record("SelectRound")
	if f.SelectRoundFunc != nil {
		return f.SelectRoundFunc(ctx, db, userID, limit)
	}
	return nil, nil
}

var _ questiondb.Repository = (*FakeQuestionRepo)(nil)

type FakeEnqueuer struct {
	EnqueueImportFunc func(ctx context.Context, fileName string, data []byte) (int64, error)
}

func (f *FakeEnqueuer) EnqueueImport(ctx context.Context, fileName string, data []byte) (int64, error) {
	return f.EnqueueImportFunc(ctx, fileName, data)
}
