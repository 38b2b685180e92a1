package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global logger instance
var Log *zap.Logger

// Init initializes the global logger.
// "development" gets colorful console output at debug level,
// anything else gets JSON structured logging at info level.
func Init(environment string) error {
	var err error
	var config zap.Config

	if environment == "development" {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	Log, err = config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)

	if err != nil {
		return err
	}

	return nil
}

// Sync flushes any buffered log entries.
// Should be called before application exits.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
