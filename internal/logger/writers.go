package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// formatWriter renders entries for format onto out. JSON passes through;
// console and text go through zerolog.ConsoleWriter, coloured only for
// console output on a terminal-like writer.
func formatWriter(format LogFormat, out io.Writer, colour bool) io.Writer {
	if format == FormatJSON {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    format == FormatText || !colour,
	}
}

// rotatingFile opens the lumberjack writer behind cfg.FilePath.
func rotatingFile(cfg LoggerConfig) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}, nil
}
