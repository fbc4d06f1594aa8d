package questiondb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for question bank persistence.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Question, error)
	Update(ctx context.Context, db bun.IDB, q *Question) error
	ListAdmin(ctx context.Context, db bun.IDB, filter AdminFilter) ([]Question, error)
	ListAll(ctx context.Context, db bun.IDB) ([]Question, error)
	DistinctCategories(ctx context.Context, db bun.IDB) ([]string, error)
	Count(ctx context.Context, db bun.IDB) (int, error)

	// InsertMany stores questions in one statement and fills in their ids.
	InsertMany(ctx context.Context, db bun.IDB, questions []Question) error

	// SelectRound returns up to limit questions for userID: never seen first,
	// then never answered correctly, then the rest. Order within each band is
	// random.
	SelectRound(ctx context.Context, db bun.IDB, userID int64, limit int) ([]RoundQuestion, error)
}
