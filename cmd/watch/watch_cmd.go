package watch

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve"
	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve/formatters"
	"github.com/LegacyCodeHQ/includeresolver/internal/config"
	"github.com/LegacyCodeHQ/includeresolver/internal/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	inputs resolve.Inputs
	format string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [toParseFolder...]",
		Short: "Re-run the include resolution whenever a source file changes",
		Long: `Watch every parsed, include and resolve folder and print a fresh report
each time a C/C++ source file is created, modified, renamed or removed.

Examples:
  includeresolver watch -p src -r third_party
  includeresolver watch --format json src`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	opts.inputs.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&opts.format, "format", formatters.OutputFormatText.String(),
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, opts *watchOptions) error {
	positional, err := resolve.ParseArgs(cmd, args)
	if err != nil {
		return err
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}

	cfg, err := opts.inputs.Load(cmd.Flags(), positional, map[string]string{config.KeyFormat: "format"})
	if err != nil {
		return err
	}

	formatter, err := resolve.NewFormatter(cfg.Format)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	settings := resolve.Settings(cfg)
	r := newReporter(cmd.OutOrStdout(), settings, formatter, logger)
	r.renderer = lipgloss.NewRenderer(cmd.OutOrStdout())

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := r.publish(); err != nil {
		return fmt.Errorf("initial resolution failed: %w", err)
	}

	roots := watchRoots(settings.ToParseFolders, settings.IncludeFolders, settings.ResolveFolders)
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %d folders\n", len(roots))
	fmt.Fprintf(cmd.ErrOrStderr(), "Press Ctrl+C to stop\n")

	return watchAndResolve(ctx, roots, settings.Excludes, r.publishOrLog, logger)
}

// watchRoots merges the folder lists, dropping duplicates.
func watchRoots(lists ...[]string) []string {
	seen := make(map[string]bool)
	var roots []string
	for _, list := range lists {
		for _, folder := range list {
			if seen[folder] {
				continue
			}
			seen[folder] = true
			roots = append(roots, folder)
		}
	}
	return roots
}
