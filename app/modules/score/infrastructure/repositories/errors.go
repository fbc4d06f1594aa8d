package scoredb

import "errors"

var (
	// ErrUnknownQuestion is returned when an answer references a question
	// that does not exist.
	ErrUnknownQuestion = errors.New("answer references an unknown question")
	ErrUnknownUser     = errors.New("score references an unknown user")
)
