package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 100
	logFileMaxBackups = 5
	logFileMaxAgeDays = 28
)

// NewLogger - JSON logger writing to stdout, or to a rotating file when filePath is set.
func NewLogger(level, filePath string) *slog.Logger {
	var writer io.Writer = os.Stdout
	if strings.TrimSpace(filePath) != "" {
		writer = &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
	}

	return slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel - debug, info, warn or error; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
