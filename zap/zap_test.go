//go:build unit

package zap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, observed := observer.New(level)

	return &Logger{
		sugar:       zap.New(core).Sugar(),
		atomicLevel: zap.NewAtomicLevelAt(level),
	}, observed
}

func TestNewValidatesEnvironment(t *testing.T) {
	_, err := New(Config{Environment: "sandbox"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestNewValidatesLevel(t *testing.T) {
	_, err := New(Config{Environment: EnvironmentProduction, Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNewBuildsPerEnvironment(t *testing.T) {
	for _, env := range []Environment{
		EnvironmentProduction,
		EnvironmentStaging,
		EnvironmentDevelopment,
		EnvironmentLocal,
	} {
		t.Run(string(env), func(t *testing.T) {
			logger, err := New(Config{Environment: env})
			require.NoError(t, err)
			require.NotNil(t, logger)

			t.Cleanup(func() { _ = logger.Sync() })
		})
	}
}

func TestNewLevelOverride(t *testing.T) {
	logger, err := New(Config{Environment: EnvironmentProduction, Level: "debug"})
	require.NoError(t, err)

	assert.Equal(t, zapcore.DebugLevel, logger.Level().Level())
}

func TestLoggingMethods(t *testing.T) {
	logger, observed := newObservedLogger(zapcore.DebugLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warnf("warn %d", 7)
	logger.Error("error message")

	entries := observed.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "debug message", entries[0].Message)
	assert.Equal(t, "warn 7", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestLevelCeilingSuppressesLowerSeverity(t *testing.T) {
	logger, observed := newObservedLogger(zapcore.WarnLevel)

	logger.Info("suppressed")
	logger.Warn("visible")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0].Message)
}

func TestWithFieldsAddsContext(t *testing.T) {
	logger, observed := newObservedLogger(zapcore.InfoLevel)

	child := logger.WithFields("component", "postgres")
	child.Info("connected")

	entries := observed.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "postgres", fields["component"])
}

func TestNilReceiverFallsBackToNop(t *testing.T) {
	var logger *Logger

	assert.NotPanics(t, func() {
		logger.Info("message")
		logger.Errorf("formatted %d", 1)
		_ = logger.Sync()
	})
}
