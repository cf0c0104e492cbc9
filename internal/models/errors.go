package models

import "errors"

// Validation errors for a single line of task input.
// None of these are fatal: the offending line is rejected and the user re-prompted.
var (
	// ErrMalformedLine indicates the name, type and color tokens could not be read
	ErrMalformedLine = errors.New("invalid input format")

	// ErrUnknownTaskType indicates a type token other than "fx" or "fl"
	ErrUnknownTaskType = errors.New("invalid task type")

	// ErrMissingFixedTime indicates a fixed task without a start time
	ErrMissingFixedTime = errors.New("invalid fixed task time format")

	// ErrDuplicateFixedStart indicates a start time already claimed by an accepted fixed task
	ErrDuplicateFixedStart = errors.New("multiple tasks with start time")
)

// DuplicateStartError reports the start time a rejected fixed task collided on.
// It matches ErrDuplicateFixedStart with errors.Is.
type DuplicateStartError struct {
	StartTime string
}

func (e *DuplicateStartError) Error() string {
	return ErrDuplicateFixedStart.Error() + " " + e.StartTime
}

// Is lets errors.Is match the sentinel
func (e *DuplicateStartError) Is(target error) bool {
	return target == ErrDuplicateFixedStart
}
