// Package httpserver runs the registration API's http.Server with graceful
// shutdown and exposes health probes.
//
// # Usage
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Config is loaded with pkg/config from HTTP_ADDR, HTTP_READ_HEADER_TIMEOUT,
// HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT and
// HTTP_SHUTDOWN_TIMEOUT. Zero values fall back to the envDefault values.
//
// Probes:
//
//	r.Get("/health/live", httpserver.HealthCheckHandler(log))
//	r.Get("/health/ready", httpserver.HealthCheckHandler(log, catalogCheck))
//
// # Error Handling
//
// Run returns errors joined with ErrStart when the address cannot be bound
// or Serve fails, and ErrAlreadyRunning on a second call. Shutdown returns
// errors joined with ErrShutdown when active requests outlive the timeout.
package httpserver
