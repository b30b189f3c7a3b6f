// Package log provides a thin wrapper around zap for the nprand packages.
//
// The global logger is a nop until InitLogger is called, so importing this
// package never produces output on its own.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// Level is the verbose representation of log level.
type Level string

// Enums for Level.
const (
	NopLevel   Level = "nop"
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// ToZapLevel converts Level to a zap level.
//
// Unknown levels map to a level above fatal, which silences everything.
func (l Level) ToZapLevel() zapcore.Level {
	switch l {
	default:
		return zapcore.FatalLevel + 1
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	}
}

// InitLogger replaces the global logger with a console logger at the given
// level.
func InitLogger(level Level) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level.ToZapLevel())
	config.Encoding = "console"
	l, err := config.Build()
	if err != nil {
		// NewProductionConfig only fails on invalid sink/encoder setups,
		// neither of which we touch.
		panic(err)
	}
	logger = l.Sugar()
}

// Debugf logs at debug level with fmt.Sprintf formatting.
func Debugf(template string, args ...interface{}) {
	logger.Debugf(template, args...)
}

// Infof logs at info level with fmt.Sprintf formatting.
func Infof(template string, args ...interface{}) {
	logger.Infof(template, args...)
}

// Warnf logs at warn level with fmt.Sprintf formatting.
func Warnf(template string, args ...interface{}) {
	logger.Warnf(template, args...)
}

// Errorf logs at error level with fmt.Sprintf formatting.
func Errorf(template string, args ...interface{}) {
	logger.Errorf(template, args...)
}
