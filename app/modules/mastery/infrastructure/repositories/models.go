package masterydb

// GroupTotal is the number of questions in one category, or in one
// (category, sub-category) pair when SubCategory is set.
type GroupTotal struct {
	Category    string `bun:"category"`
	SubCategory string `bun:"sub_category"`
	Total       int    `bun:"total"`
}

// CorrectQuestion is a question the user has answered correctly at least once.
type CorrectQuestion struct {
	QuestionID  int64   `bun:"question_id"`
	Category    string  `bun:"category"`
	SubCategory *string `bun:"sub_category"`
}
