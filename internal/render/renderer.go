package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/thenoetrevino/priosched/internal/config"
	"github.com/thenoetrevino/priosched/internal/models"
)

// Renderer writes prompts, headers and task rows to the console.
// Colors are downsampled to what the destination supports.
type Renderer struct {
	out     io.Writer
	styles  Styles
	display config.Display
}

// Option configures a Renderer
type Option func(*rendererConfig)

type rendererConfig struct {
	profile  colorprofile.Profile
	detected bool
}

// WithProfile forces a color profile instead of detecting one from the writer.
// colorprofile.NoTTY produces plain text.
func WithProfile(p colorprofile.Profile) Option {
	return func(cfg *rendererConfig) {
		cfg.profile = p
		cfg.detected = false
	}
}

// New creates a Renderer writing to w
func New(w io.Writer, cfg *config.Config, opts ...Option) *Renderer {
	rc := rendererConfig{detected: true}
	for _, opt := range opts {
		opt(&rc)
	}

	var out *colorprofile.Writer
	if rc.detected {
		out = colorprofile.NewWriter(w, os.Environ())
	} else {
		out = &colorprofile.Writer{Forward: w, Profile: rc.profile}
	}

	return &Renderer{
		out:     out,
		styles:  NewStyles(cfg.ColorScheme),
		display: cfg.Display,
	}
}

// Rule writes a full-width line of "=" characters
func (r *Renderer) Rule() error {
	return r.Line(strings.Repeat("=", r.display.RuleWidth))
}

// BoxedHeader writes title centered between two rules
func (r *Renderer) BoxedHeader(title string) error {
	if err := r.Rule(); err != nil {
		return err
	}
	centered := lipgloss.PlaceHorizontal(r.display.RuleWidth, lipgloss.Center, title)
	if err := r.Line(r.styles.Header.Render(strings.TrimRight(centered, " "))); err != nil {
		return err
	}
	return r.Rule()
}

// Prompt writes text without a trailing newline
func (r *Renderer) Prompt(format string, args ...any) error {
	_, err := fmt.Fprintf(r.out, format, args...)
	return err
}

// Line writes text followed by a newline
func (r *Renderer) Line(text string) error {
	_, err := fmt.Fprintln(r.out, text)
	return err
}

// Error writes a rejected-input message
func (r *Renderer) Error(message string) error {
	return r.Line(r.styles.Error.Render(message))
}

// TaskRow formats a task as a single listing row. The color label keeps its
// styling; it is downsampled only when written through the Renderer.
func (r *Renderer) TaskRow(task models.Task) string {
	color := fmt.Sprintf("%-*s", r.display.ColorWidth, task.Priority.ColorLabel())

	var b strings.Builder
	fmt.Fprintf(&b, "| Task: %-*s | Color: %s | Type: %s",
		r.display.NameWidth, task.Name,
		r.styles.Priority(task.Priority).Render(color),
		task.Kind)
	if task.IsFixed() {
		fmt.Fprintf(&b, " (%s)", task.Window())
	}
	b.WriteString(" |")
	return b.String()
}

// Task writes the listing row for task
func (r *Renderer) Task(task models.Task) error {
	return r.Line(r.TaskRow(task))
}
