package commands

import (
	"io"
	"log/slog"
)

// logLevels maps accepted --log-level values to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// validLogLevel reports whether levelStr names a supported level.
func validLogLevel(levelStr string) bool {
	_, ok := logLevels[levelStr]

	return ok
}

// newLogger creates a slog.Logger for the given level and format. It does not
// set the global logger.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
