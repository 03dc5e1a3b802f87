package cmd

import (
	"os"

	"github.com/LegacyCodeHQ/includeresolver/cmd/extensions"
	"github.com/LegacyCodeHQ/includeresolver/cmd/resolve"
	"github.com/LegacyCodeHQ/includeresolver/cmd/watch"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "includeresolver",
	Short: "Find the include folders a C/C++ code base needs",
	Long: `includeresolver parses C/C++ sources, follows their #include directives
and computes the minimal set of include folders a build must add so every
include resolves. Includes that cannot be resolved, and includes that more
than one folder could resolve, are reported.

Arguments that do not start with a command name are passed to 'resolve',
so 'includeresolver -p src -r third_party' works as well.

Use 'includeresolver --help' to see all available commands, or
'includeresolver <command> --help' for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetArgs(defaultToResolve(rootCmd, os.Args[1:]))
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// defaultToResolve prepends "resolve" unless args start with a subcommand or a root flag.
func defaultToResolve(root *cobra.Command, args []string) []string {
	if len(args) == 0 {
		return args
	}

	switch args[0] {
	case "-h", "--help", "--version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return args
	}
	for _, sub := range root.Commands() {
		if sub.Name() == args[0] || sub.HasAlias(args[0]) {
			return args
		}
	}

	return append([]string{resolve.Cmd.Name()}, args...)
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.AddCommand(extensions.Cmd)

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	// Update version field dynamically (in case it was set via ldflags)
	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
