package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init.
var Log = logrus.New()

// Init configures the level and destination of Log. An empty file keeps
// stderr. The returned closer releases the log file, if any.
func Init(level, file string) (func() error, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	Log.SetLevel(lvl)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if file == "" {
		Log.SetOutput(os.Stderr)
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return nil, fmt.Errorf("can not create log directory: %w", err)
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("can not open log file %s: %w", file, err)
	}

	Log.SetOutput(f)
	return f.Close, nil
}

// Discard silences Log. Used by tests that exercise failure paths.
func Discard() {
	Log.SetOutput(io.Discard)
}
