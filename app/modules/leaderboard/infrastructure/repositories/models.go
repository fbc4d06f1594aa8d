package leaderboarddb

import "time"

// BestScore is a user's single best round joined with their profile.
type BestScore struct {
	UserID         int64     `bun:"user_id"`
	Username       string    `bun:"username"`
	StoreLocation  *string   `bun:"store_location"`
	Score          int       `bun:"score"`
	TotalQuestions int       `bun:"total_questions"`
	Percentage     float64   `bun:"percentage"`
	CreatedAt      time.Time `bun:"created_at"`
}
