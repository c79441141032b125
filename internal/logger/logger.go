package logger

import (
	"github.com/2m24/Compare/internal/config"
	"github.com/rs/zerolog"
)

// New creates a zerolog logger from the application log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
