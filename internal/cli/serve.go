package cli

import (
	"fmt"
	"log/slog"
	"net"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/useragentkit/internal/inspector"
	"github.com/dmitrymomot/useragentkit/pkg/config"
	"github.com/dmitrymomot/useragentkit/pkg/httpserver"
	"github.com/dmitrymomot/useragentkit/pkg/logger"
	"github.com/dmitrymomot/useragentkit/pkg/requestid"
	"github.com/dmitrymomot/useragentkit/pkg/useragent"
)

// NewServeCommand creates the serve command
func NewServeCommand(opts *options) *cobra.Command {
	var (
		addr   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the signature inspector HTTP API",
		Long: `Run an HTTP API that decodes the caller's User-Agent and parses or
formats signatures on request. Server settings come from UASIG_HTTP_*
environment variables; --addr overrides UASIG_HTTP_ADDR.

Endpoints:
  GET  /healthz
  GET  /v1/signature
  POST /v1/signature/parse
  POST /v1/signature/format`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch logger.Format(format) {
			case logger.FormatJSON, logger.FormatText:
			default:
				return fmt.Errorf("unsupported log format %q: must be %q or %q", format, logger.FormatJSON, logger.FormatText)
			}

			var cfg httpserver.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			log := logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithFormat(logger.Format(format)),
				logger.WithLevel(level),
				logger.WithAttr(logger.Component("uasig")),
				logger.WithContextExtractors(
					requestid.LoggerExtractor(),
					useragent.LoggerExtractor(),
				),
			)

			srv := httpserver.NewFromConfig(cfg,
				httpserver.WithLogger(log),
				httpserver.WithStartHook(func(l *slog.Logger, a net.Addr) {
					l.Info("inspector listening", slog.String("addr", a.String()))
				}),
				httpserver.WithStopHook(func(l *slog.Logger) {
					l.Info("inspector stopped")
				}),
			)
			return srv.Run(cmd.Context(), inspector.NewRouter(log))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&format, "log-format", string(logger.FormatJSON), "Log format: json or text")

	return cmd
}
