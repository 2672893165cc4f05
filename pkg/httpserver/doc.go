// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks, and a health-check handler.
//
// Run blocks until the context is cancelled, an interrupt/TERM signal
// arrives, or the listener fails. Shutdown uses http.Server.Shutdown with a
// configurable deadline so in-flight requests drain before the process exits.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown; inspect them with errors.Is.
package httpserver
