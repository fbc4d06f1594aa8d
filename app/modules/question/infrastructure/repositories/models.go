package questiondb

import (
	"time"

	"github.com/uptrace/bun"
)

// Question is a single trivia item. CorrectAnswer is always one of Options.
type Question struct {
	bun.BaseModel `bun:"table:questions,alias:q"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Category      string    `bun:"category,notnull" json:"category"`
	SubCategory   *string   `bun:"sub_category" json:"sub_category"`
	Question      string    `bun:"question,notnull" json:"question"`
	Options       []string  `bun:"options,type:jsonb,notnull" json:"options"`
	CorrectAnswer string    `bun:"correct_answer,notnull" json:"correct_answer"`
	Explanation   *string   `bun:"explanation" json:"explanation"`
	Difficulty    string    `bun:"difficulty,notnull,default:'medium'" json:"difficulty"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

// RoundQuestion is the player-facing projection of a Question. It never
// carries the answer or explanation.
type RoundQuestion struct {
	ID       int64    `bun:"id" json:"id"`
	Question string   `bun:"question" json:"question"`
	Options  []string `bun:"options,type:jsonb" json:"options"`
	Category string   `bun:"category" json:"category"`
}

// AdminFilter narrows the admin question listing. Empty fields match all.
type AdminFilter struct {
	Search   string
	Category string
}
