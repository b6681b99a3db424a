// Package httpserver runs the categorizr HTTP service with graceful shutdown.
//
// Run binds the listener, serves until the context is cancelled or SIGINT or
// SIGTERM arrives, and then drains in-flight requests within the configured
// shutdown timeout. Listen failures are joined with ErrStart and drain
// failures with ErrShutdown.
//
// HealthCheckHandler serves both probes: without checks it is a liveness
// endpoint, with checks (for example redis.Healthcheck) it reports readiness.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
