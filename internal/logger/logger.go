// Package logger builds the application's zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger configured for env.
//
// "prod" writes JSON at INFO, "staging" writes JSON at DEBUG, anything
// else writes human-readable console output at DEBUG.
func New(env string) (*zap.Logger, error) {
	var config zap.Config
	switch env {
	case "prod":
		config = zap.NewProductionConfig()
	case "staging":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	default:
		config = zap.NewDevelopmentConfig()
	}

	logger, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
