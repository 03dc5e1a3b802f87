package resolve

import (
	"fmt"
	"os"

	"github.com/LegacyCodeHQ/includeresolver/includes"
	"github.com/LegacyCodeHQ/includeresolver/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Inputs are the flags shared by every command that runs a resolution.
type Inputs struct {
	toParse    []string
	include    []string
	resolve    []string
	exclude    []string
	files      []string
	verbose    bool
	configFile string
}

// flagBindings maps configuration keys to the flags that override them.
var flagBindings = map[string]string{
	config.KeyVerbose: "verbose",
}

// Folder and pattern lists are not bound through viper, which splits array
// flag values on commas. A list flag set on the command line replaces the
// configured list in applyListFlags.

// AddFlags registers the input flags on fs.
func (in *Inputs) AddFlags(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&in.toParse, "toParse", "p", nil, "Folders to parse (repeatable, or space-separated values)")
	fs.StringArrayVarP(&in.include, "include", "i", nil, "Folders used as include search paths, probed in order")
	fs.StringArrayVarP(&in.resolve, "resolve", "r", nil, "Folders searched to infer missing include folders")
	fs.StringArrayVarP(&in.exclude, "exclude", "e", nil, "Glob patterns of files and folders to skip (e.g. '**/test/**')")
	fs.StringArrayVarP(&in.files, "file", "f", nil, "Files whose words are appended to the command line")
	fs.BoolVarP(&in.verbose, "verbose", "v", false, "Enable debug logging and progress output")
	fs.StringVar(&in.configFile, "config", "", "Config file (default: .includeresolver.{yaml,toml,json} in the working directory)")
}

// ParseArgs expands args and parses them into the command's flags.
// The remaining positional arguments are returned; they are extra folders to parse.
func ParseArgs(cmd *cobra.Command, args []string) ([]string, error) {
	expanded, err := ExpandArgs(args, os.ReadFile)
	if err != nil {
		return nil, err
	}
	if err := cmd.Flags().Parse(expanded); err != nil {
		return nil, err
	}
	return cmd.Flags().Args(), nil
}

// Load merges flags, config file, environment and positional folders.
func (in *Inputs) Load(fs *pflag.FlagSet, positional []string, extraBindings map[string]string) (*config.Config, error) {
	bindings := make(map[string]string, len(flagBindings)+len(extraBindings))
	for key, flagName := range flagBindings {
		bindings[key] = flagName
	}
	for key, flagName := range extraBindings {
		bindings[key] = flagName
	}

	cfg, _, err := config.Load(config.LoadOptions{
		ConfigFilePath: in.configFile,
		Flags:          fs,
		FlagBindings:   bindings,
	})
	if err != nil {
		return nil, err
	}
	in.applyListFlags(fs, cfg)

	cfg.ToParse = append(cfg.ToParse, positional...)
	if len(cfg.ToParse) == 0 {
		return nil, fmt.Errorf("no folders to parse: use --toParse or pass folders as arguments")
	}
	return cfg, nil
}

func (in *Inputs) applyListFlags(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("toParse") {
		cfg.ToParse = append([]string(nil), in.toParse...)
	}
	if fs.Changed("include") {
		cfg.Include = append([]string(nil), in.include...)
	}
	if fs.Changed("resolve") {
		cfg.Resolve = append([]string(nil), in.resolve...)
	}
	if fs.Changed("exclude") {
		cfg.Exclude = append([]string(nil), in.exclude...)
	}
}

// Settings converts cfg to resolver settings.
func Settings(cfg *config.Config) includes.Settings {
	return includes.Settings{
		ToParseFolders: cfg.ToParse,
		IncludeFolders: cfg.Include,
		ResolveFolders: cfg.Resolve,
		Excludes:       cfg.Exclude,
	}
}
