package collector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/priosched/internal/models"
)

// ErrInputEnded is returned when input closes before the target count is reached
var ErrInputEnded = errors.New("input ended before all tasks were entered")

// Sink receives every accepted task
type Sink interface {
	Push(task models.Task)
}

// Console is where prompts and rejection messages are written
type Console interface {
	Prompt(format string, args ...any) error
	Error(message string) error
}

// Collector reads task lines until the requested number have been accepted.
// It owns the set of start times claimed by accepted fixed tasks.
type Collector struct {
	reader   *bufio.Reader
	console  Console
	sink     Sink
	logger   *slog.Logger
	claimed  map[string]struct{}
	accepted int
	attempts int
}

// New creates a Collector reading lines from in
func New(in io.Reader, console Console, sink Sink, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Collector{
		reader:  bufio.NewReader(in),
		console: console,
		sink:    sink,
		logger:  logger,
		claimed: make(map[string]struct{}),
	}
}

// ReadCount reads the line holding the number of tasks to collect.
// ErrInputEnded is returned if no line is available.
func (c *Collector) ReadCount() (int, error) {
	line, ok, err := c.readLine()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrInputEnded
	}
	return ParseCount(line), nil
}

// Collect prompts for and reads task lines until n tasks have been accepted in total.
// Rejected lines are reported and retried; they never count toward n.
// It returns the number of tasks accepted so far.
func (c *Collector) Collect(n int) (int, error) {
	for c.accepted < n {
		if err := c.console.Prompt("Enter task %d: ", c.accepted+1); err != nil {
			return c.accepted, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, ok, err := c.readLine()
		if err != nil {
			return c.accepted, err
		}
		if !ok {
			c.logger.Warn("input ended early", "accepted", c.accepted, "wanted", n)
			return c.accepted, ErrInputEnded
		}
		c.attempts++

		if err := c.Submit(line); err != nil {
			if !isValidationError(err) {
				return c.accepted, err
			}
			c.logger.Debug("task rejected", "attempt", c.attempts, "error", err)
			if err := c.console.Error(RetryMessage(err)); err != nil {
				return c.accepted, fmt.Errorf("failed to write error: %w", err)
			}
		}
	}
	return c.accepted, nil
}

// Submit validates one line and, if it is valid, hands the task to the sink
func (c *Collector) Submit(line string) error {
	task, err := ParseLine(line)
	if err != nil {
		return err
	}
	return c.Accept(task)
}

// Accept hands task to the sink unless its start time is already claimed
func (c *Collector) Accept(task models.Task) error {
	if task.IsFixed() {
		if _, taken := c.claimed[task.StartTime]; taken {
			return &models.DuplicateStartError{StartTime: task.StartTime}
		}
	}

	c.sink.Push(task)
	if task.IsFixed() {
		c.claimed[task.StartTime] = struct{}{}
	}
	c.accepted++

	c.logger.Debug("task accepted",
		"name", task.Name,
		"kind", task.Kind.String(),
		"priority", task.Priority.String())
	return nil
}

// Accepted returns the number of tasks accepted so far
func (c *Collector) Accepted() int {
	return c.accepted
}

// Claimed reports whether start is held by an accepted fixed task
func (c *Collector) Claimed(start string) bool {
	_, ok := c.claimed[start]
	return ok
}

// readLine returns the next line without its line ending. Lines have no length limit.
// The bool is false once input is exhausted.
func (c *Collector) readLine() (string, bool, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	if err != nil && line == "" {
		return "", false, nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}
