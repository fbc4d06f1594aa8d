package questionservice

import "errors"

var (
	ErrMissingFields      = errors.New("missing required question fields")
	ErrTooFewOptions      = errors.New("question needs at least two options")
	ErrAnswerNotInOptions = errors.New("correct answer is not one of the options")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrInvalidSpreadsheet = errors.New("invalid question spreadsheet")
)
