package resolve

import (
	"fmt"
	"io"
	"os"

	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve/formatters"
	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/LegacyCodeHQ/includeresolver/internal/config"
	"github.com/LegacyCodeHQ/includeresolver/internal/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type resolveOptions struct {
	inputs     Inputs
	format     string
	output     string
	helpResult bool
}

// outputBindings maps configuration keys to the resolve-only flags.
var outputBindings = map[string]string{
	config.KeyFormat: "format",
	config.KeyOutput: "output",
}

// Cmd represents the resolve command.
var Cmd = NewCommand()

// NewCommand returns a new resolve command instance.
func NewCommand() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [toParseFolder...]",
		Short: "Compute the include folders needed to resolve every include",
		Long: `Parse every C/C++ file below the given folders, follow their #include
directives and report the include folders a build must add, the includes
that cannot be resolved and the includes that several folders could resolve.

Multi-value flags accept space-separated values: every following word that
does not start with '-' belongs to the flag.

Examples:
  includeresolver resolve -p src -r third_party
  includeresolver resolve -p app lib -i include -r vendor sdk -o report.txt
  includeresolver resolve --format json src
  includeresolver resolve -f args.txt
  includeresolver resolve --help-result`,
		// Flags are parsed by runResolve once argument files are expanded.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, opts)
		},
	}

	opts.inputs.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&opts.format, "format", formatters.OutputFormatText.String(),
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.helpResult, "help-result", false, "Describe the report format and exit (short: -hr)")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string, opts *resolveOptions) error {
	positional, err := ParseArgs(cmd, args)
	if err != nil {
		return err
	}

	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}
	if opts.helpResult {
		_, err := fmt.Fprint(cmd.OutOrStdout(), formatters.ResultSchema)
		return err
	}

	cfg, err := opts.inputs.Load(cmd.Flags(), positional, outputBindings)
	if err != nil {
		return err
	}

	formatter, err := NewFormatter(cfg.Format)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	resolveOpts := []includes.Option{includes.WithLogger(logger)}

	var progress *progressPrinter
	if cfg.Verbose {
		logger.Info("start parsing...")
		progress = newProgressPrinter(cmd.ErrOrStderr())
		resolveOpts = append(resolveOpts, includes.WithProgress(progress.update))
	}

	result, err := includes.Resolve(Settings(cfg), resolveOpts...)
	if progress != nil {
		progress.finish()
	}
	if err != nil {
		return fmt.Errorf("failed to resolve includes: %w", err)
	}

	logger.Debug("resolution complete",
		"parsed", result.ParsedFiles(),
		"unresolved", len(result.UnresolvedIncludes()),
		"conflicts", len(result.ConflictedIncludes()),
		"folders", len(result.ResolveIncludeFolders()))

	return writeReport(cmd.OutOrStdout(), cfg.Output, formatter, result)
}

// writeReport formats result to the output file, or to stdout when outputPath is empty.
// Headings are styled only on stdout, and only when it supports colors.
func writeReport(stdout io.Writer, outputPath string, formatter formatters.Formatter, result *includes.Result) error {
	formatOpts := formatters.FormatOptions{}
	if outputPath == "" {
		formatOpts.Renderer = lipgloss.NewRenderer(stdout)
	}

	output, err := formatter.Format(result, formatOpts)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}

	if outputPath == "" {
		_, err = fmt.Fprintln(stdout, output)
		return err
	}

	if err := os.WriteFile(outputPath, []byte(output+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}
	return nil
}
