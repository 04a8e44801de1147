package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/useragentkit/pkg/config"
	"github.com/dmitrymomot/useragentkit/pkg/logger"
	"github.com/dmitrymomot/useragentkit/pkg/useragent"
)

// NewFormatCommand creates the format command
func NewFormatCommand(opts *options) *cobra.Command {
	var (
		output   string
		envFiles []string
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Build a signature",
		Long: `Build a signature from USERAGENT_* environment variables, optional
.env files and flags. Flags take precedence over the environment.
Fields that are not set are written as Unknown.`,
		Example: `  uasig format --executable "iOS Example" --app-version 1.0.0 --os-name iOS --os-version 13.0.0
  USERAGENT_OS_NAME=Linux uasig format -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(envFiles...); err != nil {
				return err
			}

			var cfg useragent.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			applyFlagOverrides(cmd.Flags(), &cfg)

			ua, err := useragent.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			opts.log.Debug("signature built", logger.Signature(ua.String()))

			enc, err := newEncoder(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			if err := enc.Encode(ua); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	flags := cmd.Flags()
	flags.String("executable", "", "Application display name")
	flags.String("app-version", "", "Application semantic version")
	flags.String("bundle", "", "Bundle or package identifier")
	flags.String("app-build", "", "Build number, one to three dot-separated integers")
	flags.String("os-name", "", "One of macOS(Catalyst), iOS, watchOS, tvOS, macOS, Linux, Windows")
	flags.String("os-version", "", "Operating system semantic version")
	flags.String("library-version", "", "Client library semantic version")
	flags.StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	flags.StringSliceVar(&envFiles, "env-file", nil, "Load variables from .env files before reading the environment")

	return cmd
}

// applyFlagOverrides copies explicitly set flags over cfg.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *useragent.Config) {
	overrides := map[string]*string{
		"executable":      &cfg.Executable,
		"app-version":     &cfg.AppVersion,
		"bundle":          &cfg.Bundle,
		"app-build":       &cfg.AppBuild,
		"os-name":         &cfg.OSName,
		"os-version":      &cfg.OSVersion,
		"library-version": &cfg.LibraryVersion,
	}
	for name, field := range overrides {
		if flags.Changed(name) {
			*field, _ = flags.GetString(name)
		}
	}
}
