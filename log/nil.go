package log

// NoneLogger is a no-op implementation of Logger. It is the default for
// components constructed without an explicit logger.
type NoneLogger struct{}

// Debug drops the log event.
func (l *NoneLogger) Debug(_ ...any) {}

// Debugf drops the log event.
func (l *NoneLogger) Debugf(_ string, _ ...any) {}

// Info drops the log event.
func (l *NoneLogger) Info(_ ...any) {}

// Infof drops the log event.
func (l *NoneLogger) Infof(_ string, _ ...any) {}

// Warn drops the log event.
func (l *NoneLogger) Warn(_ ...any) {}

// Warnf drops the log event.
func (l *NoneLogger) Warnf(_ string, _ ...any) {}

// Error drops the log event.
func (l *NoneLogger) Error(_ ...any) {}

// Errorf drops the log event.
func (l *NoneLogger) Errorf(_ string, _ ...any) {}

// WithFields returns the same no-op logger.
//
//nolint:ireturn
func (l *NoneLogger) WithFields(_ ...any) Logger {
	return l
}
