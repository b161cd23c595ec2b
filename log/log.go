package log

import (
	"fmt"
	"strings"
)

// Logger is the interface consumed by every component in this library.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	WithFields(fields ...any) Logger
}

// LogLevel represents the level of verbosity of the log.
//
// Lower numeric values indicate higher severity. A logger configured at a
// given level emits that level and every level with a lower numeric value,
// so InfoLevel emits error, warn and info but suppresses debug.
type LogLevel uint8

// Level constants, most severe first.
const (
	ErrorLevel LogLevel = iota
	WarnLevel
	InfoLevel
	DebugLevel
)

// String returns the string representation of a log level.
func (level LogLevel) String() string {
	switch level {
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warn"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel takes a string level and returns the LogLevel constant.
func ParseLevel(lvl string) (LogLevel, error) {
	switch strings.ToLower(lvl) {
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	}

	var l LogLevel

	return l, fmt.Errorf("not a valid LogLevel: %q", lvl)
}
