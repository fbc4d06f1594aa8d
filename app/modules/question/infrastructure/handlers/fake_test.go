package questionhandlers

import (
	"context"
	"io"

	questionservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/application"
	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
)

type FakeService struct {
	NextRoundFunc         func(ctx context.Context, userID int64) ([]questiondb.RoundQuestion, error)
	ListQuestionsFunc     func(ctx context.Context, filter questiondb.AdminFilter) ([]questiondb.Question, error)
	UpdateQuestionFunc    func(ctx context.Context, id int64, input questionservice.QuestionInput) (*questiondb.Question, error)
	ListCategoriesFunc    func(ctx context.Context) ([]string, error)
	SubmitImportFunc      func(ctx context.Context, fileName string, data []byte) (*questionservice.ImportOutcome, error)
	ImportSpreadsheetFunc func(ctx context.Context, r io.Reader) (*questionservice.ImportReport, error)
	ExportSpreadsheetFunc func(ctx context.Context) ([]byte, error)
}

func (f *FakeService) NextRound(ctx context.Context, userID int64) ([]questiondb.RoundQuestion, error) {
	return f.NextRoundFunc(ctx, userID)
}

func (f *FakeService) ListQuestions(ctx context.Context, filter questiondb.AdminFilter) ([]questiondb.Question, error) {
	return f.ListQuestionsFunc(ctx, filter)
}

func (f *FakeService) UpdateQuestion(ctx context.Context, id int64, input questionservice.QuestionInput) (*questiondb.Question, error) {
	return f.UpdateQuestionFunc(ctx, id, input)
}

func (f *FakeService) ListCategories(ctx context.Context) ([]string, error) {
	return f.ListCategoriesFunc(ctx)
}

func (f *FakeService) SubmitImport(ctx context.Context, fileName string, data []byte) (*questionservice.ImportOutcome, error) {
	return f.SubmitImportFunc(ctx, fileName, data)
}

func (f *FakeService) ImportSpreadsheet(ctx context.Context, r io.Reader) (*questionservice.ImportReport, error) {
	return f.ImportSpreadsheetFunc(ctx, r)
}

func (f *FakeService) ExportSpreadsheet(ctx context.Context) ([]byte, error) {
	return f.ExportSpreadsheetFunc(ctx)
}

var _ questionservice.Service = (*FakeService)(nil)
