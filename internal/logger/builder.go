package logger

import (
	"io"
	stdlog "log" // Standard Go log package, aliased to avoid conflict with zerolog field
	"os"

	"github.com/aleister1102/rawhttpc/internal/common/errorwrapper"
	"github.com/aleister1102/rawhttpc/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config  LoggerConfig
	console io.Writer
	err     error
}

// NewLoggerBuilder creates a builder for an info-level console logger on stderr
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config: LoggerConfig{
			Level:      zerolog.InfoLevel,
			Format:     FormatConsole,
			MaxSizeMB:  config.DefaultMaxLogSizeMB,
			MaxBackups: config.DefaultMaxLogBackups,
		},
		console: os.Stderr,
	}
}

// WithConfig applies the application log config. Conversion errors are
// reported by Build.
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	resolved, err := convertConfig(cfg)
	if err != nil {
		lb.err = err
		return lb
	}
	lb.config = resolved
	return lb
}

// WithConsoleOutput redirects console output, stderr by default
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	lb.console = w
	return lb
}

// Build creates the logger and routes the standard log package through it
func (lb *LoggerBuilder) Build() (zerolog.Logger, error) {
	if lb.err != nil {
		return zerolog.Nop(), errorwrapper.WrapError(lb.err, "invalid log config")
	}

	writers := []io.Writer{formatWriter(lb.config.Format, lb.console, lb.console == os.Stderr)}

	if lb.config.FilePath != "" {
		file, err := rotatingFile(lb.config)
		if err != nil {
			return zerolog.Nop(), errorwrapper.WrapErrorf(err, "cannot open log file '%s'", lb.config.FilePath)
		}
		// escape codes would end up in the file
		writers = append(writers, formatWriter(lb.config.Format, file, false))
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}
