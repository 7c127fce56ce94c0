package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

const (
	// FormatText человекочитаемый вывод key=value
	FormatText = "text"
	// FormatJSON одна JSON запись на строку
	FormatJSON = "json"
)

// New создает slog.Logger с заданным уровнем и форматом вывода
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.Errorf("invalid log format: %s", format)
	}
}
