package scoreservice

import (
	"context"
	"time"

	scoredb "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/infrastructure/repositories"
)

// Service records rounds and serves a user's score history.
type Service interface {
	// SubmitRound validates and stores one completed round together with the
	// per-question statistics it touches, atomically.
	SubmitRound(ctx context.Context, userID int64, sub Submission) (*scoredb.Score, error)

	// History returns the user's scores newest first, optionally limited to
	// those recorded at or after since.
	History(ctx context.Context, userID int64, since *time.Time) ([]scoredb.Score, error)

	// HistoryChart renders the user's percentage over time as a PNG.
	HistoryChart(ctx context.Context, userID int64) ([]byte, error)
}
