package testutils

import (
	"io"
	"log/slog"
	"testing"

	leaderboardservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/application"
	masteryservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/mastery/application"
	scoreservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/score/application"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"go.opentelemetry.io/otel/trace/noop"
)

// Services are the real scoring services over the environment's database.
type Services struct {
	Score       *scoreservice.ScoreService
	Mastery     *masteryservice.MasteryService
	Leaderboard *leaderboardservice.LeaderboardService
}

func NewServices(t *testing.T, env *TestEnvironment) Services {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	db := env.DBService.GetDB()

	score, err := scoreservice.NewScoreService(env.DBService.ScoreDB, logger, metrics.NewNoopScore(), tracer, db)
	if err != nil {
		t.Fatalf("NewScoreService: %v", err)
	}
	mastery, err := masteryservice.NewMasteryService(env.DBService.MasteryDB, logger, metrics.NewNoop(), tracer, db)
	if err != nil {
		t.Fatalf("NewMasteryService: %v", err)
	}
	leaderboard, err := leaderboardservice.NewLeaderboardService(env.DBService.LeaderboardDB, logger, metrics.NewNoop(), tracer, db)
	if err != nil {
		t.Fatalf("NewLeaderboardService: %v", err)
	}
	return Services{Score: score, Mastery: mastery, Leaderboard: leaderboard}
}
