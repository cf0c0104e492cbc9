package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/colorprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/priosched/internal/config"
	"github.com/thenoetrevino/priosched/internal/models"
)

func newPlainRenderer(buf *bytes.Buffer) *Renderer {
	return New(buf, config.Default(), WithProfile(colorprofile.NoTTY))
}

func TestBoxedHeader(t *testing.T) {
	tests := []struct {
		title   string
		padding int
	}{
		{"Task Scheduler", 18},
		{"Tasks in Priority Order", 13},
	}

	rule := strings.Repeat("=", 50)
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, newPlainRenderer(&buf).BoxedHeader(tt.title))

			want := rule + "\n" + strings.Repeat(" ", tt.padding) + tt.title + "\n" + rule + "\n"
			assert.Equal(t, want, buf.String())
		})
	}
}

func TestTaskRow(t *testing.T) {
	tests := []struct {
		name string
		task models.Task
		want string
	}{
		{
			name: "fixed with start only",
			task: models.NewFixedTask("Meeting", models.PriorityHigh, "08:00", ""),
			want: "| Task: Meeting         | Color: Red    | Type: Fixed (08:00) |",
		},
		{
			name: "fixed with window",
			task: models.NewFixedTask("Workout", models.PriorityMedium, "06:00", "07:30"),
			want: "| Task: Workout         | Color: Orange | Type: Fixed (06:00 - 07:30) |",
		},
		{
			name: "floating",
			task: models.NewFloatingTask("Study", models.PriorityLow),
			want: "| Task: Study           | Color: Blue   | Type: Floating |",
		},
		{
			name: "long name is not truncated",
			task: models.NewFloatingTask("AVeryLongTaskNameIndeed", models.PriorityLow),
			want: "| Task: AVeryLongTaskNameIndeed | Color: Blue   | Type: Floating |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, newPlainRenderer(&buf).Task(tt.task))
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func TestTaskWritesRow(t *testing.T) {
	var buf bytes.Buffer
	r := newPlainRenderer(&buf)

	require.NoError(t, r.Task(models.NewFloatingTask("Study", models.PriorityLow)))
	assert.Equal(t, "| Task: Study           | Color: Blue   | Type: Floating |\n", buf.String())
}

func TestCustomDisplayWidths(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Display.NameWidth = 4
	cfg.Display.RuleWidth = 10
	r := New(&buf, cfg, WithProfile(colorprofile.NoTTY))

	require.NoError(t, r.Task(models.NewFloatingTask("Gym", models.PriorityHigh)))
	require.NoError(t, r.Rule())
	assert.Equal(t, "| Task: Gym  | Color: Red    | Type: Floating |\n==========\n", buf.String())
}

func TestPromptAndError(t *testing.T) {
	var buf bytes.Buffer
	r := newPlainRenderer(&buf)

	require.NoError(t, r.Prompt("Enter task %d: ", 3))
	require.NoError(t, r.Error("Invalid input format. Please enter again."))

	assert.Equal(t, "Enter task 3: Invalid input format. Please enter again.\n", buf.String())
}

func TestTaskRowIsStyledBeforeDownsampling(t *testing.T) {
	var buf bytes.Buffer
	row := newPlainRenderer(&buf).TaskRow(models.NewFloatingTask("Study", models.PriorityHigh))

	assert.Contains(t, row, "\x1b[")
	assert.Contains(t, row, "Red")
}

func TestColorProfileKeepsStyling(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, config.Default(), WithProfile(colorprofile.TrueColor))

	require.NoError(t, r.Task(models.NewFloatingTask("Study", models.PriorityHigh)))
	assert.Contains(t, buf.String(), "\x1b[")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrorsPropagate(t *testing.T) {
	r := New(failingWriter{}, config.Default(), WithProfile(colorprofile.NoTTY))

	assert.Error(t, r.Rule())
	assert.Error(t, r.BoxedHeader("x"))
	assert.Error(t, r.Prompt("x"))
}
