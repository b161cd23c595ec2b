package zap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment controls the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config contains the logger initialization inputs.
type Config struct {
	Environment Environment
	// Level overrides the environment's default level when set
	// ("debug", "info", "warn", "error").
	Level string
}

func (c Config) validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
}

// New creates a structured logger for the given environment profile.
// Production and staging emit JSON with ISO-8601 timestamps; development and
// local emit human-readable console output.
func New(cfg Config) (*Logger, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid zap config: %w", err)
	}

	baseConfig := buildConfigByEnvironment(cfg.Environment)

	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}

		baseConfig.Level = zap.NewAtomicLevelAt(parsed)
	}

	baseConfig.DisableStacktrace = true

	logger, err := baseConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	return &Logger{
		sugar:       logger.Sugar(),
		atomicLevel: baseConfig.Level,
	}, nil
}

func buildConfigByEnvironment(env Environment) zap.Config {
	switch env {
	case EnvironmentDevelopment, EnvironmentLocal:
		return zap.NewDevelopmentConfig()
	default:
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		return cfg
	}
}
