package scoredb

import (
	"time"

	"github.com/uptrace/bun"
)

// Score is the immutable record of one completed round.
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:s"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID         int64     `bun:"user_id,notnull" json:"userId"`
	Score          int       `bun:"score,notnull" json:"score"`
	TotalQuestions int       `bun:"total_questions,notnull" json:"totalQuestions"`
	Percentage     float64   `bun:"percentage,type:numeric(5,2),notnull" json:"percentage"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// QuestionStat holds one user's counters for one question.
type QuestionStat struct {
	bun.BaseModel `bun:"table:user_question_stats,alias:uqs"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID         int64     `bun:"user_id,notnull" json:"userId"`
	QuestionID     int64     `bun:"question_id,notnull" json:"questionId"`
	TimesSeen      int       `bun:"times_seen,notnull" json:"timesSeen"`
	TimesCorrect   int       `bun:"times_correct,notnull" json:"timesCorrect"`
	LastAnsweredAt time.Time `bun:"last_answered_at,notnull" json:"lastAnsweredAt"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt      time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

// Answer is the outcome of one question within a round.
type Answer struct {
	QuestionID int64
	IsCorrect  bool
}
