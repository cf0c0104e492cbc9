package user

import (
	"os"
	"os/user"
)

// Name returns the name of the user running the scheduler, for log records.
// It prefers the OS account, then $USER, then "unknown".
func Name() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
