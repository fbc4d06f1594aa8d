package questionservice

import (
	"bytes"
	"context"
	"fmt"
	"io"

	questiondb "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/repositories"
	questionxlsx "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/infrastructure/xlsx"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/operation"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/results"
	"github.com/uptrace/bun"
)

// SubmitImport queues or runs a spreadsheet import.
func (s *QuestionService) SubmitImport(ctx context.Context, fileName string, data []byte) (*ImportOutcome, error) {
	if s.queue == nil {
		report, err := s.ImportSpreadsheet(ctx, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &ImportOutcome{Report: report}, nil
	}

	result, err := operation.WithTelemetry(s.run, ctx, "EnqueueImport", fileName,
		func(ctx context.Context) (results.OperationResult[*ImportOutcome, error], error) {
			jobID, err := s.queue.EnqueueImport(ctx, fileName, data)
			if err != nil {
				return results.OperationResult[*ImportOutcome, error]{}, fmt.Errorf("failed to enqueue import: %w", err)
			}
			return results.SuccessResult[*ImportOutcome, error](&ImportOutcome{Queued: true, JobID: jobID}), nil
		})
	return operation.Collapse(result, err)
}

// ImportSpreadsheet parses an xlsx document and inserts every valid row in
// one transaction. Invalid rows are reported and skipped.
func (s *QuestionService) ImportSpreadsheet(ctx context.Context, r io.Reader) (*ImportReport, error) {
	result, err := operation.Run(s.run, ctx, "ImportSpreadsheet", "xlsx", nil,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[*ImportReport, error], error) {
			rows, err := questionxlsx.Parse(r)
			if err != nil {
				return results.FailureResult[*ImportReport, error](fmt.Errorf("%w: %w", ErrInvalidSpreadsheet, err)), nil
			}

			report := &ImportReport{Skipped: []RowError{}}
			valid := make([]questiondb.Question, 0, len(rows))
			for _, row := range rows {
				q := row.Question
				if err := ValidateInput(q.Question, q.Options, q.CorrectAnswer, q.Category); err != nil {
					report.Skipped = append(report.Skipped, RowError{Line: row.Line, Reason: err.Error()})
					continue
				}
				valid = append(valid, q)
			}

			if err := s.repo.InsertMany(ctx, db, valid); err != nil {
				return results.OperationResult[*ImportReport, error]{}, fmt.Errorf("failed to insert questions: %w", err)
			}
			report.Imported = len(valid)

			s.logger.InfoContext(ctx, "Question spreadsheet imported",
				attr.ExtractCorrelationID(ctx),
				attr.Int("imported", report.Imported),
				attr.Int("skipped", len(report.Skipped)),
			)
			return results.SuccessResult[*ImportReport, error](report), nil
		})
	return operation.Collapse(result, err)
}

// ExportSpreadsheet renders the whole question bank as xlsx.
func (s *QuestionService) ExportSpreadsheet(ctx context.Context) ([]byte, error) {
	result, err := operation.Run(s.run, ctx, "ExportSpreadsheet", "xlsx", operation.ReadSnapshot,
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]byte, error], error) {
			questions, err := s.repo.ListAll(ctx, db)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, fmt.Errorf("failed to list questions: %w", err)
			}
			data, err := questionxlsx.Write(questions)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, err
			}
			return results.SuccessResult[[]byte, error](data), nil
		})
	return operation.Collapse(result, err)
}
