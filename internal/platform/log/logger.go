package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with a component attribute. Views use it for the
// silent-degrade read path: fetch failures are logged here and never shown
// as banners.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a logger writing to w. level accepts debug|info|warn|error.
func New(w io.Writer, level string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{Logger: slog.New(handler), component: "fintrack"}
}

// NewFile opens (or creates) the given path for appending and logs there.
// An empty path discards output, which is what the TUI wants by default:
// stderr would corrupt the alternate screen.
func NewFile(path, level string) (*Logger, error) {
	if path == "" {
		return New(io.Discard, level), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return New(f, level), nil
}

// WithComponent returns a logger tagged with a sub-component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
