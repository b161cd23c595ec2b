package zap

import (
	logpkg "github.com/Walkish/postgres-controller/log"
	"go.uber.org/zap"
)

// Logger is the zap-backed implementation of log.Logger.
type Logger struct {
	sugar       *zap.SugaredLogger
	atomicLevel zap.AtomicLevel
}

// Compile-time assertion: *Logger implements log.Logger.
var _ logpkg.Logger = (*Logger)(nil)

func (l *Logger) must() *zap.SugaredLogger {
	if l == nil || l.sugar == nil {
		return zap.NewNop().Sugar()
	}

	return l.sugar
}

// Debug logs a message with debug severity.
func (l *Logger) Debug(args ...any) {
	l.must().Debug(args...)
}

// Debugf logs a formatted message with debug severity.
func (l *Logger) Debugf(format string, args ...any) {
	l.must().Debugf(format, args...)
}

// Info logs a message with info severity.
func (l *Logger) Info(args ...any) {
	l.must().Info(args...)
}

// Infof logs a formatted message with info severity.
func (l *Logger) Infof(format string, args ...any) {
	l.must().Infof(format, args...)
}

// Warn logs a message with warn severity.
func (l *Logger) Warn(args ...any) {
	l.must().Warn(args...)
}

// Warnf logs a formatted message with warn severity.
func (l *Logger) Warnf(format string, args ...any) {
	l.must().Warnf(format, args...)
}

// Error logs a message with error severity.
func (l *Logger) Error(args ...any) {
	l.must().Error(args...)
}

// Errorf logs a formatted message with error severity.
func (l *Logger) Errorf(format string, args ...any) {
	l.must().Errorf(format, args...)
}

// WithFields returns a child logger with additional key/value context.
//
//nolint:ireturn
func (l *Logger) WithFields(fields ...any) logpkg.Logger {
	return &Logger{
		sugar:       l.must().With(fields...),
		atomicLevel: l.atomicLevel,
	}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.must().Sync()
}

// Level returns the runtime-adjustable level handle for this logger.
func (l *Logger) Level() zap.AtomicLevel {
	return l.atomicLevel
}

// Raw returns the underlying zap logger.
func (l *Logger) Raw() *zap.Logger {
	return l.must().Desugar()
}
