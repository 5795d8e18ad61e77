// Package logger configures the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

// New builds a logger for the given environment. Production mode emits
// JSON at info level; anything else gets the human-readable development
// encoder at debug level.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
