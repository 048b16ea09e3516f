package service

import "errors"

// ErrNotFound is returned when an operation references an unknown task id.
// It is an expected outcome, not a failure: callers report it and move on.
var ErrNotFound = errors.New("task not found")
