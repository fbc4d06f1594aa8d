package questionqueue

import "github.com/riverqueue/river"

// QueueName is the dedicated queue for question bank jobs.
const QueueName = "questions"

// ImportJob carries an uploaded spreadsheet to the import worker.
type ImportJob struct {
	FileName string `json:"file_name"`
	Data     []byte `json:"data"`
}

// Kind returns the job type identifier for River
func (ImportJob) Kind() string { return "question_import" }

// InsertOpts routes import jobs to QueueName.
func (ImportJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{Queue: QueueName, MaxAttempts: 3}
}
