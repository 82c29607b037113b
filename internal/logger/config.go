package logger

import (
	"fmt"
	"strings"

	"github.com/aleister1102/rawhttpc/internal/config"
	"github.com/rs/zerolog"
)

// LogFormat selects how entries are rendered
type LogFormat string

const (
	FormatJSON    LogFormat = "json"
	FormatConsole LogFormat = "console"
	FormatText    LogFormat = "text"
)

// LoggerConfig is config.LogConfig with level and format parsed and size
// limits defaulted. Console output is always written; a non-empty FilePath
// adds a rotating file.
type LoggerConfig struct {
	Level      zerolog.Level
	Format     LogFormat
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// convertConfig resolves cfg. Empty level and format mean info and console.
func convertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return LoggerConfig{}, err
	}
	format, err := parseFormat(cfg.LogFormat)
	if err != nil {
		return LoggerConfig{}, err
	}

	resolved := LoggerConfig{
		Level:      level,
		Format:     format,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.MaxLogSizeMB,
		MaxBackups: cfg.MaxLogBackups,
	}
	if resolved.MaxSizeMB <= 0 {
		resolved.MaxSizeMB = config.DefaultMaxLogSizeMB
	}
	if resolved.MaxBackups <= 0 {
		resolved.MaxBackups = config.DefaultMaxLogBackups
	}
	return resolved, nil
}

func parseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func parseFormat(s string) (LogFormat, error) {
	switch format := LogFormat(strings.ToLower(strings.TrimSpace(s))); format {
	case "":
		return FormatConsole, nil
	case FormatJSON, FormatConsole, FormatText:
		return format, nil
	default:
		return "", fmt.Errorf("invalid log format %q", s)
	}
}
