package logger

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

var levelMap = map[string]slog.Level{
	"DEBUG":   slog.LevelDebug,
	"INFO":    slog.LevelInfo,
	"WARN":    slog.LevelWarn,
	"WARNING": slog.LevelWarn,
	"ERROR":   slog.LevelError,
}

// ParseLevel разбирает уровень логирования без учета регистра
func ParseLevel(s string) (slog.Level, error) {
	level, ok := levelMap[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return slog.LevelInfo, errors.Errorf("invalid level: %s", s)
	}
	return level, nil
}
