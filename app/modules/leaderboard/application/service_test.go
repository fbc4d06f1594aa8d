package leaderboardservice

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	leaderboarddb "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/metrics"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestService(t *testing.T, repo leaderboarddb.Repository, logs *bytes.Buffer) *LeaderboardService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(logs, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	svc, err := NewLeaderboardService(repo, logger, metrics.NewNoop(), tracer, nil)
	require.NoError(t, err)
	return svc
}

func day(d int) time.Time { return time.Date(2024, 1, d, 12, 0, 0, 0, time.UTC) }

func TestRank(t *testing.T) {
	t.Run("earlier date wins equal rounds", func(t *testing.T) {
		best := []leaderboarddb.BestScore{
			{UserID: 2, Username: "b", Score: 20, TotalQuestions: 20, Percentage: 100, CreatedAt: day(5)},
			{UserID: 1, Username: "a", Score: 20, TotalQuestions: 20, Percentage: 100, CreatedAt: day(1)},
		}
		entries, missing := Rank([]int64{1, 2}, best)
		assert.Empty(t, missing)
		require.Len(t, entries, 2)
		assert.Equal(t, "a", entries[0].Username)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, day(1), entries[0].Date)
		assert.Equal(t, "b", entries[1].Username)
		assert.Equal(t, 2, entries[1].Rank)
	})

	t.Run("percentage then score", func(t *testing.T) {
		best := []leaderboarddb.BestScore{
			{UserID: 1, Username: "low", Score: 19, TotalQuestions: 20, Percentage: 95, CreatedAt: day(1)},
			{UserID: 2, Username: "small", Score: 10, TotalQuestions: 10, Percentage: 100, CreatedAt: day(1)},
			{UserID: 3, Username: "big", Score: 20, TotalQuestions: 20, Percentage: 100, CreatedAt: day(9)},
		}
		entries, _ := Rank([]int64{1, 2, 3}, best)
		names := []string{entries[0].Username, entries[1].Username, entries[2].Username}
		assert.Equal(t, []string{"big", "small", "low"}, names)
	})

	t.Run("identical rows get distinct ranks", func(t *testing.T) {
		best := []leaderboarddb.BestScore{
			{UserID: 1, Username: "x", Score: 5, Percentage: 100, CreatedAt: day(1)},
			{UserID: 2, Username: "y", Score: 5, Percentage: 100, CreatedAt: day(1)},
		}
		entries, _ := Rank([]int64{1, 2}, best)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 2, entries[1].Rank)
	})

	t.Run("mastered users without rounds are reported", func(t *testing.T) {
		best := []leaderboarddb.BestScore{{UserID: 1, Username: "a", Percentage: 100}}
		entries, missing := Rank([]int64{1, 7}, best)
		assert.Len(t, entries, 1)
		assert.Equal(t, []int64{7}, missing)
	})
}

func TestRankOrdering(t *testing.T) {
	faker := gofakeit.New(42)
	best := make([]leaderboarddb.BestScore, 0, 200)
	mastered := make([]int64, 0, 200)
	for i := int64(1); i <= 200; i++ {
		total := faker.IntRange(1, 4) * 5
		score := faker.IntRange(0, total)
		best = append(best, leaderboarddb.BestScore{
			UserID:         i,
			Username:       faker.Username(),
			Score:          score,
			TotalQuestions: total,
			Percentage:     float64(score*10000/total) / 100,
			CreatedAt:      day(faker.IntRange(1, 28)),
		})
		mastered = append(mastered, i)
	}

	entries, missing := Rank(mastered, best)
	require.Empty(t, missing)
	require.Len(t, entries, len(best))
	for i := 1; i < len(entries); i++ {
		a, b := entries[i-1], entries[i]
		assert.Equal(t, i, a.Rank)
		switch {
		case a.Percentage != b.Percentage:
			assert.Greater(t, a.Percentage, b.Percentage)
		case a.Score != b.Score:
			assert.Greater(t, a.Score, b.Score)
		default:
			assert.False(t, b.Date.Before(a.Date))
		}
	}
}

func TestCultivated(t *testing.T) {
	t.Run("no questions", func(t *testing.T) {
		repo := NewFakeLeaderboardRepo()
		got, err := newTestService(t, repo, &bytes.Buffer{}).Cultivated(context.Background())
		require.NoError(t, err)
		assert.Equal(t, StatusNoQuestions, got.Status)
		assert.NotNil(t, got.Entries)
		assert.Empty(t, got.Entries)
		assert.Equal(t, []string{"CountQuestions"}, repo.Trace())
	})

	t.Run("nobody mastered", func(t *testing.T) {
		repo := NewFakeLeaderboardRepo()
		repo.CountQuestionsFunc = func(ctx context.Context, db bun.IDB) (int, error) { return 20, nil }
		repo.MasteredUsersFunc = func(ctx context.Context, db bun.IDB, required int) ([]int64, error) {
			assert.Equal(t, 20, required)
			return nil, nil
		}
		got, err := newTestService(t, repo, &bytes.Buffer{}).Cultivated(context.Background())
		require.NoError(t, err)
		assert.Equal(t, StatusNoMasteredUsers, got.Status)
		assert.Equal(t, []string{"CountQuestions", "MasteredUsers"}, repo.Trace())
	})

	t.Run("ranks and warns about missing rounds", func(t *testing.T) {
		repo := NewFakeLeaderboardRepo()
		repo.CountQuestionsFunc = func(ctx context.Context, db bun.IDB) (int, error) { return 20, nil }
		repo.MasteredUsersFunc = func(ctx context.Context, db bun.IDB, required int) ([]int64, error) {
			return []int64{1, 2, 3}, nil
		}
		repo.BestScoresFunc = func(ctx context.Context, db bun.IDB, userIDs []int64) ([]leaderboarddb.BestScore, error) {
			assert.Equal(t, []int64{1, 2, 3}, userIDs)
			return []leaderboarddb.BestScore{
				{UserID: 2, Username: "b", Score: 20, TotalQuestions: 20, Percentage: 100, CreatedAt: day(5)},
				{UserID: 1, Username: "a", Score: 20, TotalQuestions: 20, Percentage: 100, CreatedAt: day(1)},
			}, nil
		}
		logs := &bytes.Buffer{}
		got, err := newTestService(t, repo, logs).Cultivated(context.Background())
		require.NoError(t, err)
		assert.Equal(t, StatusListed, got.Status)
		require.Len(t, got.Entries, 2)
		assert.Equal(t, "a", got.Entries[0].Username)
		assert.Contains(t, logs.String(), "Mastered user has no recorded rounds")
		assert.Contains(t, logs.String(), "user_id=3")
	})

	t.Run("repository error", func(t *testing.T) {
		repo := NewFakeLeaderboardRepo()
		repo.CountQuestionsFunc = func(ctx context.Context, db bun.IDB) (int, error) { return 0, errors.New("boom") }
		_, err := newTestService(t, repo, &bytes.Buffer{}).Cultivated(context.Background())
		require.Error(t, err)
	})
}
