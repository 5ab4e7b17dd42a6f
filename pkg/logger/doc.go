// Package logger builds configured log/slog loggers through functional
// options: output format (JSON for production aggregation, text for
// development), minimum level, static attributes, and environment presets.
//
// It also carries small attr helpers (Error, Component, Slug, Duration)
// so log call sites stay consistent across the codebase.
//
// # Usage
//
//	log := logger.New(logger.WithProduction("barberpages"))
//	log.Info("booking page created", logger.Slug(slug))
package logger
