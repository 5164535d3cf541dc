package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// Supported output formats for New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatText    = "text"
)

// New returns a Logger writing to w in the given format at the given level
// ("debug", "info", "warn", "error"). Console and JSON output go through
// zerolog; "text" uses slog's text handler.
func New(w io.Writer, format, level string) (Logger, error) {
	zl, sl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case FormatConsole, "":
		return NewConsoleZerolog(w, zl), nil
	case FormatJSON:
		return NewJSONZerolog(w, zl), nil
	case FormatText:
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: sl}))), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func parseLevel(level string) (zerolog.Level, slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel, slog.LevelDebug, nil
	case "info", "":
		return zerolog.InfoLevel, slog.LevelInfo, nil
	case "warn", "warning":
		return zerolog.WarnLevel, slog.LevelWarn, nil
	case "error":
		return zerolog.ErrorLevel, slog.LevelError, nil
	default:
		return zerolog.NoLevel, 0, fmt.Errorf("unknown log level %q", level)
	}
}
