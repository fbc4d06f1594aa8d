package questiondb

import "errors"

var (
	ErrNotFound = errors.New("question not found")
)
