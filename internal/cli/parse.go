package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/useragentkit/pkg/logger"
	"github.com/dmitrymomot/useragentkit/pkg/useragent"
)

// ErrRejected is returned when at least one input did not parse.
var ErrRejected = errors.New("signatures rejected")

// NewParseCommand creates the parse command
func NewParseCommand(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [signature...]",
		Short: "Decode signatures",
		Long: `Decode each signature given as an argument, or each line of stdin
when no arguments are given. Valid signatures are written to stdout;
rejected ones are logged to stderr and make the command fail.`,
		Example: `  uasig parse "iOS Example/1.0.0 (org.alamofire.iOS-Example; build:1; iOS 13.0.0) Alamofire/5.0.0"
  cat access.log.ua | uasig parse -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := newEncoder(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				if inputs, err = readLines(cmd); err != nil {
					return err
				}
			}

			if err := runParse(opts, enc, inputs); err != nil {
				_ = enc.Close()
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}

func runParse(opts *options, enc encoder, inputs []string) error {
	var rejected int
	for i, raw := range inputs {
		ua, err := useragent.Parse(raw)
		if err != nil {
			rejected++
			opts.log.Warn("signature rejected",
				"line", i+1,
				logger.Signature(raw),
				logger.Error(err),
			)
			continue
		}
		opts.log.Debug("signature accepted", "line", i+1, logger.Signature(raw))
		if err := enc.Encode(ua); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRejected, rejected, len(inputs))
	}
	return nil
}

// readLines returns the non-blank lines of stdin without their terminators.
func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}
