package masterydb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new mastery repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CountQuestions(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	n, err := db.NewSelect().
		TableExpr("questions AS q").
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("masterydb.CountQuestions: %w", err)
	}
	return n, nil
}

func (r *Impl) CategoryTotals(ctx context.Context, db bun.IDB) ([]GroupTotal, error) {
	db = r.resolveDB(db)
	var totals []GroupTotal
	err := db.NewSelect().
		TableExpr("questions AS q").
		ColumnExpr("q.category").
		ColumnExpr("COUNT(q.id) AS total").
		Where("q.category <> ''").
		GroupExpr("q.category").
		OrderExpr("q.category ASC").
		Scan(ctx, &totals)
	if err != nil {
		return nil, fmt.Errorf("masterydb.CategoryTotals: %w", err)
	}
	return totals, nil
}

func (r *Impl) SubCategoryTotals(ctx context.Context, db bun.IDB) ([]GroupTotal, error) {
	db = r.resolveDB(db)
	var totals []GroupTotal
	err := db.NewSelect().
		TableExpr("questions AS q").
		ColumnExpr("q.category").
		ColumnExpr("q.sub_category").
		ColumnExpr("COUNT(q.id) AS total").
		Where("q.category <> ''").
		Where("q.sub_category IS NOT NULL").
		Where("q.sub_category <> ''").
		GroupExpr("q.category, q.sub_category").
		OrderExpr("q.category ASC, q.sub_category ASC").
		Scan(ctx, &totals)
	if err != nil {
		return nil, fmt.Errorf("masterydb.SubCategoryTotals: %w", err)
	}
	return totals, nil
}

func (r *Impl) CorrectQuestions(ctx context.Context, db bun.IDB, userID int64) ([]CorrectQuestion, error) {
	db = r.resolveDB(db)
	var correct []CorrectQuestion
	err := db.NewSelect().
		TableExpr("user_question_stats AS uqs").
		Join("JOIN questions AS q ON q.id = uqs.question_id").
		ColumnExpr("uqs.question_id").
		ColumnExpr("q.category").
		ColumnExpr("q.sub_category").
		Where("uqs.user_id = ?", userID).
		Where("uqs.times_correct > 0").
		OrderExpr("uqs.question_id ASC").
		Scan(ctx, &correct)
	if err != nil {
		return nil, fmt.Errorf("masterydb.CorrectQuestions: %w", err)
	}
	return correct, nil
}
