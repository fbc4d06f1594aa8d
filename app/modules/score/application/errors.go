package scoreservice

import "errors"

var (
	ErrInvalidSubmission = errors.New("score, totalQuestions and results are required")
	ErrInvalidTotal      = errors.New("totalQuestions must be a positive number")
	ErrResultsMismatch   = errors.New("results do not match totalQuestions")
	ErrScoreOutOfRange   = errors.New("score is outside [0, totalQuestions]")
	ErrInvalidSince      = errors.New("unrecognised since filter")
)
