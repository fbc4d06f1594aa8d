package leaderboardservice

import (
	"sort"
	"time"

	leaderboarddb "github.com/Black-And-White-Club/budtender-trivia/app/modules/leaderboard/infrastructure/repositories"
)

// Entry is one row of the Cultivated list.
type Entry struct {
	Rank           int       `json:"rank"`
	Username       string    `json:"username"`
	StoreLocation  *string   `json:"storeLocation"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     float64   `json:"percentage"`
	Date           time.Time `json:"date"`
}

// Rank orders the best rounds of mastered users and numbers them from 1.
// Ranks are positional: equal rows still get distinct ranks. It returns the
// mastered users that have no round to rank.
func Rank(mastered []int64, best []leaderboarddb.BestScore) ([]Entry, []int64) {
	byUser := make(map[int64]leaderboarddb.BestScore, len(best))
	for _, b := range best {
		byUser[b.UserID] = b
	}

	rows := make([]leaderboarddb.BestScore, 0, len(mastered))
	var missing []int64
	for _, id := range mastered {
		b, ok := byUser[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		rows = append(rows, b)
	}

	sort.SliceStable(rows, func(i, j int) bool { return outranks(rows[i], rows[j]) })

	entries := make([]Entry, len(rows))
	for i, b := range rows {
		entries[i] = Entry{
			Rank:           i + 1,
			Username:       b.Username,
			StoreLocation:  b.StoreLocation,
			Score:          b.Score,
			TotalQuestions: b.TotalQuestions,
			Percentage:     b.Percentage,
			Date:           b.CreatedAt,
		}
	}
	return entries, missing
}

// outranks reports whether a sorts before b: higher percentage, then higher
// score, then the earlier date.
func outranks(a, b leaderboarddb.BestScore) bool {
	if a.Percentage != b.Percentage {
		return a.Percentage > b.Percentage
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
