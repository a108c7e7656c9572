package internal

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a slog.Logger at the desired verbosity.
// Unknown levels fall back to INFO.
func NewLogger(level string) *slog.Logger {
	handlerLevel := slog.LevelInfo
	switch strings.ToUpper(level) {
	case "DEBUG":
		handlerLevel = slog.LevelDebug
	case "WARN":
		handlerLevel = slog.LevelWarn
	case "ERROR":
		handlerLevel = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: handlerLevel}))
}
