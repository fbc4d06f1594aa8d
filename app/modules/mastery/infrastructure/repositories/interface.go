package masterydb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository reads the question totals and per-user correctness that mastery
// is computed from. It never writes.
type Repository interface {
	CountQuestions(ctx context.Context, db bun.IDB) (int, error)

	// CategoryTotals counts questions per non-empty category.
	CategoryTotals(ctx context.Context, db bun.IDB) ([]GroupTotal, error)

	// SubCategoryTotals counts questions per (category, sub-category) pair.
	// Questions missing either value are left out.
	SubCategoryTotals(ctx context.Context, db bun.IDB) ([]GroupTotal, error)

	// CorrectQuestions lists every question the user has answered correctly
	// at least once, with its grouping columns.
	CorrectQuestions(ctx context.Context, db bun.IDB, userID int64) ([]CorrectQuestion, error)
}
