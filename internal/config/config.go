// Package config merges command line flags, an optional config file, the
// environment and a .env file into the settings of one run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "includeresolver"
	// ConfigFileName is the name of the config file searched in the working directory (without extension).
	ConfigFileName = ".includeresolver"
	// EnvPrefix prefixes every environment variable read by the config layer.
	EnvPrefix = "INCLUDE_RESOLVER"
	// DefaultEnvFile is loaded into the environment when present.
	DefaultEnvFile = ".env"
)

// Keys of the configuration values.
const (
	KeyToParse = "to_parse"
	KeyInclude = "include"
	KeyResolve = "resolve"
	KeyExclude = "exclude"
	KeyFormat  = "format"
	KeyOutput  = "output"
	KeyVerbose = "verbose"
)

// configFileExts are probed in order when no config file is given.
var configFileExts = []string{"yaml", "yml", "toml", "json"}

// Config holds the settings of one run.
type Config struct {
	ToParse []string `mapstructure:"to_parse"`
	Include []string `mapstructure:"include"`
	Resolve []string `mapstructure:"resolve"`
	Exclude []string `mapstructure:"exclude"`
	Format  string   `mapstructure:"format"`
	Output  string   `mapstructure:"output"`
	Verbose bool     `mapstructure:"verbose"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Format: "text",
	}
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigFilePath is used exclusively when set; it must exist.
	ConfigFilePath string
	// SearchDir is searched for ConfigFileName.{yaml,yml,toml,json}. Defaults to ".".
	SearchDir string
	// EnvFile is loaded into the process environment when present. Defaults to DefaultEnvFile.
	EnvFile string
	// Flags holds the command line flags named by FlagBindings.
	Flags *pflag.FlagSet
	// FlagBindings maps configuration keys to flag names. A flag overrides the
	// file and the environment only when it was set on the command line.
	FlagBindings map[string]string
}

// Load resolves the configuration. The returned path is the config file that
// was read, or empty when defaults, environment and flags were enough.
func Load(opts LoadOptions) (*Config, string, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, "", err
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyToParse, defaults.ToParse)
	v.SetDefault(KeyInclude, defaults.Include)
	v.SetDefault(KeyResolve, defaults.Resolve)
	v.SetDefault(KeyExclude, defaults.Exclude)
	v.SetDefault(KeyFormat, defaults.Format)
	v.SetDefault(KeyOutput, defaults.Output)
	v.SetDefault(KeyVerbose, defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, flagName := range opts.FlagBindings {
			flag := opts.Flags.Lookup(flagName)
			if flag == nil {
				return nil, "", fmt.Errorf("unknown flag %q bound to %q", flagName, key)
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, "", fmt.Errorf("failed to bind flag %q: %w", flagName, err)
			}
		}
	}

	resolvedPath, err := configFilePath(opts)
	if err != nil {
		return nil, "", err
	}
	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, resolvedPath, nil
}

func configFilePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.SearchDir
	if dir == "" {
		dir = "."
	}
	for _, ext := range configFileExts {
		candidate := filepath.Join(dir, ConfigFileName+"."+ext)
		if fileExists(candidate) {
			return candidate, nil
		}
	}

	return "", nil
}

func loadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
