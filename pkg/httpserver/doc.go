// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run listens on the configured address and blocks until the context is
// canceled or the process receives SIGINT or SIGTERM. Requests in flight get
// the shutdown timeout to finish. Serve does the same on a listener the caller
// already owns, which tests use with "127.0.0.1:0".
//
// Servers are built with New and Option values such as WithAddr and
// WithLogger, or with NewFromConfig for an env-loaded Config:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, api.NewRouter(set, log, checks)); err != nil {
//		return err
//	}
//
// HealthCheckHandler serves liveness and readiness probes as JSON.
//
// Listen and serve failures are wrapped with ErrStart and shutdown failures
// with ErrShutdown.
package httpserver
