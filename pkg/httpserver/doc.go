// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener first, so an address such as "127.0.0.1:0" works
// and start hooks receive the real address. The server stops when the
// context passed to Run is cancelled or the process gets SIGINT/SIGTERM;
// open requests then have the shutdown timeout to complete.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(l *slog.Logger, addr net.Addr) {
//			l.Info("listening", "addr", addr.String())
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		// errors.Is(err, httpserver.ErrStart)
//	}
//
// Config carries the same settings as UASIG_HTTP_* environment variables
// for use with pkg/config and NewFromConfig.
package httpserver
