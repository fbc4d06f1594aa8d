package leaderboarddb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository reads the data behind the Cultivated list.
type Repository interface {
	CountQuestions(ctx context.Context, db bun.IDB) (int, error)

	// MasteredUsers returns the ids of users who have answered at least
	// required distinct questions correctly, ascending.
	MasteredUsers(ctx context.Context, db bun.IDB, required int) ([]int64, error)

	// BestScores returns at most one row per user: the round with the highest
	// percentage, then the highest score, then the earliest date. Users with
	// no rounds are absent from the result.
	BestScores(ctx context.Context, db bun.IDB, userIDs []int64) ([]BestScore, error)
}
