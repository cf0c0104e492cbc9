package collector

import (
	"errors"

	"github.com/thenoetrevino/priosched/internal/models"
)

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrMalformedLine) ||
		errors.Is(err, models.ErrUnknownTaskType) ||
		errors.Is(err, models.ErrMissingFixedTime) ||
		errors.Is(err, models.ErrDuplicateFixedStart)
}

// RetryMessage returns the console message shown for a rejected line
func RetryMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrMalformedLine):
		return "Invalid input format. Please enter again."
	case errors.Is(err, models.ErrUnknownTaskType):
		return "Invalid task type. Use 'fx' for Fixed or 'fl' for Floating. Please enter again."
	case errors.Is(err, models.ErrMissingFixedTime):
		return "Invalid fixed task time format. Please enter again."
	case errors.Is(err, models.ErrDuplicateFixedStart):
		var dup *models.DuplicateStartError
		if errors.As(err, &dup) {
			return "Error: Multiple tasks with start time " + dup.StartTime + ". Please enter again."
		}
		return "Error: Multiple tasks with the same start time. Please enter again."
	default:
		return err.Error()
	}
}
