package collector

import (
	"strconv"
	"strings"

	"github.com/thenoetrevino/priosched/internal/models"
)

// Task type tokens
const (
	TypeFixed    = "fx"
	TypeFloating = "fl"
)

// ParseLine parses one task line of the form
//
//	name type color [startTime [endTime]]
//
// Tokens are separated by whitespace. Tokens after the color are ignored for floating
// tasks, and tokens after the end time are ignored for fixed tasks.
// Start-time uniqueness is not checked here; see Collector.
func ParseLine(line string) (models.Task, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return models.Task{}, models.ErrMalformedLine
	}

	name, typeToken := fields[0], fields[1]
	code, err := strconv.Atoi(fields[2])
	if err != nil {
		return models.Task{}, models.ErrMalformedLine
	}
	priority := models.PriorityFromCode(code)

	switch typeToken {
	case TypeFixed:
		if len(fields) < 4 {
			return models.Task{}, models.ErrMissingFixedTime
		}
		var end string
		if len(fields) > 4 {
			end = fields[4]
		}
		return models.NewFixedTask(name, priority, fields[3], end), nil
	case TypeFloating:
		return models.NewFloatingTask(name, priority), nil
	default:
		return models.Task{}, models.ErrUnknownTaskType
	}
}

// ParseCount reads the task count from the first token of line.
// A missing or non-numeric count is treated as zero.
func ParseCount(line string) int {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}
