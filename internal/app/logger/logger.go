package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger. Verbose runs get colored development output
// on stderr; otherwise only warnings and errors surface, keeping stdout clean
// for batch progress messages.
func NewLogger(verbose bool) (*zap.Logger, error) {
	var config zap.Config

	if verbose {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		config.OutputPaths = []string{"stderr"}
	}

	return config.Build()
}

// MustNewLogger creates a new logger and panics if it fails.
func MustNewLogger(verbose bool) *zap.Logger {
	logger, err := NewLogger(verbose)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}
