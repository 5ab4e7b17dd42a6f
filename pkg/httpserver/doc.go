// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeouts, health-check handlers, and structured logging via slog.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal
// is received, then shuts the server down within a configurable deadline.
// Construction goes through New or NewFromConfig with functional options
// (WithAddr, WithReadTimeout, WithLogger, ...). Start failures are wrapped
// with ErrStart and shutdown failures with ErrShutdown so callers can use
// errors.Is.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log, mongoProbe))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
