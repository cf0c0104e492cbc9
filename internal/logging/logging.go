package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Logger is the global slog instance for the application
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init initializes the logging system, writing logs to ~/.priosched/logs/priosched.log
// Uses text format for human readability. Every record carries the run's ID.
// The returned function closes the log file.
func Init() (func() error, error) {
	// Create ~/.priosched/logs/ directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return noopClose, err
	}

	logDir := filepath.Join(homeDir, ".priosched", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return noopClose, err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "priosched.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return noopClose, err
	}

	Logger = New(file, uuid.NewString())
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file.Close, nil
}

// New creates a debug-level text logger writing to w, tagged with runID
func New(w io.Writer, runID string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler).With("run_id", runID)
}

func noopClose() error { return nil }
