package logger

import (
	"github.com/aleister1102/rawhttpc/internal/config"
	"github.com/rs/zerolog"
)

// New creates the application logger from the log section of the config
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
