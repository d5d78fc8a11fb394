// Package logging builds the application logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = "info"

// New creates a console logger writing to stderr at the given level. An
// empty level means DefaultLevel.
func New(level string, debug bool) (*zap.Logger, *zap.AtomicLevel, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		var err error
		lvl, err = zapcore.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		lvl = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(lvl)
	cc.Sampling = nil
	cc.OutputPaths = []string{"stderr"}

	log, err := cc.Build()
	if err != nil {
		return nil, nil, err
	}
	return log, &cc.Level, nil
}
