package extensions

import (
	"fmt"

	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/spf13/cobra"
)

// Cmd represents the extensions command.
var Cmd = NewCommand()

// NewCommand returns a new extensions command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "List the file extensions that are scanned",
		Long: `List the file extensions recognized as C/C++ sources and headers.
Matching is case-sensitive.

Examples:
  includeresolver extensions`,
		Args: cobra.NoArgs,
		RunE: runExtensions,
	}

	return cmd
}

func runExtensions(cmd *cobra.Command, _ []string) error {
	for _, ext := range includes.SourceExtensions() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), ext); err != nil {
			return err
		}
	}

	return nil
}
