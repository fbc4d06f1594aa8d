package scoredb

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Repository defines the contract for answer events and question statistics.
type Repository interface {
	CreateScore(ctx context.Context, db bun.IDB, score *Score) error

	// IncrementStats adds one sighting per answer, and one correct answer per
	// correct answer, to the (userID, question) counters. Rows are created on
	// first sight. Each answer is a single atomic upsert.
	IncrementStats(ctx context.Context, db bun.IDB, userID int64, answers []Answer, at time.Time) error

	// ListHistory returns the user's scores newest first. A nil since returns
	// everything.
	ListHistory(ctx context.Context, db bun.IDB, userID int64, since *time.Time) ([]Score, error)

	GetStats(ctx context.Context, db bun.IDB, userID int64) ([]QuestionStat, error)
}
