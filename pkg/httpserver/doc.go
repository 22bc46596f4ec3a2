// Package httpserver runs the HTTP front end with graceful shutdown.
//
// Run binds the listener itself, so Ready and Addr are usable as soon as
// the server accepts connections, including with ":0" addresses. It returns
// when the context is cancelled or the process gets SIGINT or SIGTERM, after
// in-flight requests finish or the shutdown timeout passes.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler back the /health/live and
// /health/ready probes. Errors from Run and Shutdown wrap ErrStart and
// ErrShutdown respectively.
package httpserver
