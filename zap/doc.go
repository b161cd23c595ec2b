// Package zap provides the production implementation of the log.Logger
// interface, backed by go.uber.org/zap.
//
// Build one with New and inject it into components that accept a
// log.Logger:
//
//	logger, err := zap.New(zap.Config{
//		Environment: zap.EnvironmentProduction,
//		Level:       "info",
//	})
package zap
