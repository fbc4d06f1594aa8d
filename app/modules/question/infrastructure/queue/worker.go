package questionqueue

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	questionservice "github.com/Black-And-White-Club/budtender-trivia/app/modules/question/application"
	"github.com/Black-And-White-Club/budtender-trivia/app/shared/observability/attr"
	"github.com/riverqueue/river"
)

// Importer runs a spreadsheet import.
type Importer interface {
	ImportSpreadsheet(ctx context.Context, r io.Reader) (*questionservice.ImportReport, error)
}

// ImportWorker executes ImportJob.
type ImportWorker struct {
	river.WorkerDefaults[ImportJob]
	importer Importer
	logger   *slog.Logger
}

// NewImportWorker creates an ImportWorker.
func NewImportWorker(logger *slog.Logger, importer Importer) *ImportWorker {
	return &ImportWorker{importer: importer, logger: logger}
}

// Work imports the job's spreadsheet. Malformed files are cancelled rather
// than retried.
func (w *ImportWorker) Work(ctx context.Context, job *river.Job[ImportJob]) error {
	logger := w.logger.With(
		attr.Int64("job_id", job.ID),
		attr.String("file_name", job.Args.FileName),
		attr.Int("attempt", job.Attempt),
	)
	logger.InfoContext(ctx, "Processing question import job")

	report, err := w.importer.ImportSpreadsheet(ctx, bytes.NewReader(job.Args.Data))
	if err != nil {
		if errors.Is(err, questionservice.ErrInvalidSpreadsheet) {
			logger.WarnContext(ctx, "Question import rejected", attr.Error(err))
			return river.JobCancel(err)
		}
		logger.ErrorContext(ctx, "Question import failed", attr.Error(err))
		return err
	}

	logger.InfoContext(ctx, "Question import job completed",
		attr.Int("imported", report.Imported),
		attr.Int("skipped", len(report.Skipped)),
	)
	return nil
}
