// Package logger builds the zerolog logger of the assistant. The console belongs to the user, so
// the log goes to a file by default.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/dirk.krummacker/assistant/internal/config"
)

const (
	permission = 0664

	// Stderr is the path that selects the standard error stream instead of a file.
	Stderr = "-"
)

// Logger is a zerolog logger together with the file it writes to, if any.
type Logger struct {
	zerolog.Logger
	file *os.File
}

// New creates a logger for the configuration. An empty path yields a logger that discards
// everything.
func New(cfg *config.ConfigLogger) (*Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	l := &Logger{}
	var writer io.Writer
	switch cfg.Path {
	case "":
		l.Logger = zerolog.Nop()
		return l, nil
	case Stderr:
		writer = zerolog.ConsoleWriter{Out: os.Stderr}
	default:
		l.file, err = os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		writer = zerolog.SyncWriter(l.file)
	}
	l.Logger = FromWriter(writer).Level(level)
	return l, nil
}

// FromWriter creates a logger with timestamps that writes JSON lines to w.
func FromWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
