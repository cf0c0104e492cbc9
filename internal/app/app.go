package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/priosched/internal/collector"
	"github.com/thenoetrevino/priosched/internal/config"
	"github.com/thenoetrevino/priosched/internal/models"
	"github.com/thenoetrevino/priosched/internal/render"
	"github.com/thenoetrevino/priosched/internal/scheduler"
)

// Console headings and messages
const (
	TitleScheduler = "Task Scheduler"
	TitleResults   = "Tasks in Priority Order"

	CountPrompt   = "Enter number of tasks: "
	FormatHint    = "Enter tasks in the format: task_name task_type color [start_time] [end_time]"
	ExampleHint   = "(Example: Meeting fx 0 08:00 OR Workout fx 1 06:00 07:30 OR Study fl 2)"
	NoTasksNotice = "No valid tasks entered."
)

// App owns everything a single run needs: the scheduler holding accepted tasks,
// the collector with its claimed start times, and the console renderer.
type App struct {
	Scheduler *scheduler.Scheduler
	Collector *collector.Collector
	Renderer  *render.Renderer

	logger *slog.Logger
}

// New creates an App reading task input from in and writing console output to out
func New(cfg *config.Config, in io.Reader, out io.Writer, opts ...Option) *App {
	ac := appConfig{}
	for _, opt := range opts {
		opt(&ac)
	}
	if ac.logger == nil {
		ac.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg == nil {
		cfg = config.Default()
	}

	var renderOpts []render.Option
	if ac.hasProfile {
		renderOpts = append(renderOpts, render.WithProfile(ac.profile))
	}

	sched := scheduler.New()
	renderer := render.New(out, cfg, renderOpts...)

	return &App{
		Scheduler: sched,
		Collector: collector.New(in, renderer, sched, ac.logger),
		Renderer:  renderer,
		logger:    ac.logger,
	}
}

// Run performs the whole interactive flow: read the task count, collect tasks,
// then print them in priority order. Input ending early is not an error; whatever
// was accepted is still printed.
func (a *App) Run() error {
	if err := a.Renderer.BoxedHeader(TitleScheduler); err != nil {
		return err
	}

	n, err := a.readCount()
	if err != nil {
		return err
	}
	a.logger.Info("collecting tasks", "count", n)

	if _, err := a.Collector.Collect(n); err != nil && !errors.Is(err, collector.ErrInputEnded) {
		return fmt.Errorf("failed to collect tasks: %w", err)
	}

	return a.Report()
}

// Report prints the results header and drains the scheduler, one row per task
func (a *App) Report() error {
	if err := a.Renderer.BoxedHeader(TitleResults); err != nil {
		return err
	}

	if a.Scheduler.IsEmpty() {
		a.logger.Info("no tasks to report")
		return a.Renderer.Line(NoTasksNotice)
	}

	drained, err := a.Scheduler.Drain(func(task models.Task) error {
		return a.Renderer.Task(task)
	})
	if err != nil {
		return fmt.Errorf("failed to print tasks: %w", err)
	}
	a.logger.Info("tasks reported", "count", drained)

	return a.Renderer.Rule()
}

func (a *App) readCount() (int, error) {
	if err := a.Renderer.Prompt(CountPrompt); err != nil {
		return 0, err
	}

	n, err := a.Collector.ReadCount()
	if err != nil && !errors.Is(err, collector.ErrInputEnded) {
		return 0, err
	}

	for _, line := range []string{"", FormatHint, ExampleHint, ""} {
		if err := a.Renderer.Line(line); err != nil {
			return 0, err
		}
	}
	return n, nil
}
