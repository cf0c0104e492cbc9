package models

// TaskKind distinguishes tasks pinned to a start time from tasks without a time window
type TaskKind int

const (
	KindFixed TaskKind = iota
	KindFloating
)

// String returns the display label for the kind
func (k TaskKind) String() string {
	if k == KindFixed {
		return "Fixed"
	}
	return "Floating"
}

// Priority is a task priority tier. Lower values are more urgent.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
)

// PriorityFromCode maps the numeric color code entered by the user to a tier.
// 0 is High, 1 is Medium, anything else falls back to Low.
func PriorityFromCode(code int) Priority {
	switch code {
	case 0:
		return PriorityHigh
	case 1:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Outranks reports whether p is a strictly higher tier than other
func (p Priority) Outranks(other Priority) bool {
	return p < other
}

// ColorLabel returns the color name the tier is displayed as
func (p Priority) ColorLabel() string {
	switch p {
	case PriorityHigh:
		return "Red"
	case PriorityMedium:
		return "Orange"
	case PriorityLow:
		return "Blue"
	default:
		return "Unknown"
	}
}

// String returns the tier name
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// Task is a single schedulable item. It is immutable once constructed.
type Task struct {
	Name      string
	Kind      TaskKind
	Priority  Priority
	StartTime string // Fixed only
	EndTime   string // Fixed only, may be empty
}

// NewFixedTask creates a task pinned to a start time with an optional end time
func NewFixedTask(name string, priority Priority, start, end string) Task {
	return Task{
		Name:      name,
		Kind:      KindFixed,
		Priority:  priority,
		StartTime: start,
		EndTime:   end,
	}
}

// NewFloatingTask creates a task with no time window
func NewFloatingTask(name string, priority Priority) Task {
	return Task{
		Name:     name,
		Kind:     KindFloating,
		Priority: priority,
	}
}

// IsFixed reports whether the task has a start time
func (t Task) IsFixed() bool {
	return t.Kind == KindFixed
}

// Window returns the time window as "start" or "start - end".
// Floating tasks have no window and return an empty string.
func (t Task) Window() string {
	if !t.IsFixed() {
		return ""
	}
	if t.EndTime == "" {
		return t.StartTime
	}
	return t.StartTime + " - " + t.EndTime
}
