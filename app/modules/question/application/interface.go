package questionservice

import (
	"context"
	"io"

	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
)

// QuestionInput is the admin edit payload. SubCategory and Difficulty keep
// their stored value when nil.
type QuestionInput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Category      string   `json:"category"`
	Explanation   string   `json:"explanation"`
	SubCategory   *string  `json:"sub_category"`
	Difficulty    *string  `json:"difficulty"`
}

// RowError explains why a spreadsheet row was not imported.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportReport summarises a spreadsheet import.
type ImportReport struct {
	Imported int        `json:"imported"`
	Skipped  []RowError `json:"skipped"`
}

// ImportOutcome is returned by SubmitImport. Exactly one of JobID and Report
// is meaningful, depending on Queued.
type ImportOutcome struct {
	Queued bool          `json:"queued"`
	JobID  int64         `json:"jobId,omitempty"`
	Report *ImportReport `json:"report,omitempty"`
}

// ImportEnqueuer hands spreadsheet imports to the background queue.
type ImportEnqueuer interface {
	EnqueueImport(ctx context.Context, fileName string, data []byte) (int64, error)
}

// Service defines the question bank operations.
type Service interface {
	NextRound(ctx context.Context, userID int64) ([]questiondb.RoundQuestion, error)
	ListQuestions(ctx context.Context, filter questiondb.AdminFilter) ([]questiondb.Question, error)
	UpdateQuestion(ctx context.Context, id int64, input QuestionInput) (*questiondb.Question, error)
	ListCategories(ctx context.Context) ([]string, error)

	// SubmitImport queues the spreadsheet when a queue is configured and
	// imports it in the request otherwise.
	SubmitImport(ctx context.Context, fileName string, data []byte) (*ImportOutcome, error)
	ImportSpreadsheet(ctx context.Context, r io.Reader) (*ImportReport, error)
	ExportSpreadsheet(ctx context.Context) ([]byte, error)
}
