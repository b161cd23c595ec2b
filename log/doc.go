// Package log defines the logging interface injected into this library's
// components.
//
// Components never configure a process-wide logger; they receive a Logger at
// construction time and fall back to NoneLogger when none is supplied. The
// zap subpackage provides the production implementation; GoLogger wraps the
// standard library logger for small programs and tests.
package log
