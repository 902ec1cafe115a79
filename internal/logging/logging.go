// Package logging builds the process wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

type Config struct {
	Level string `mapstructure:"level"`
	// File additionally receives plain text logs when set
	File string `mapstructure:"file"`
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a logger writing colourised output to stdout, plus cfg.File if set.
// The returned closer releases the log file and must be called on exit.
func New(cfg *Config, stdout *os.File) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	consoleHandler := tint.NewHandler(stdout, &tint.Options{
		Level:      level,
		TimeFormat: timeFormat,
		NoColor:    !isatty.IsTerminal(stdout.Fd()),
	})

	if cfg.File == "" {
		return slog.New(consoleHandler), nopCloser{}, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	fileHandler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(NewFanoutHandler(consoleHandler, fileHandler)), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
