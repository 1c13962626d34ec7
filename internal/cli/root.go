// Package cli implements the quark command tree.
package cli

import (
	"fmt"
	"os"

	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/quark/internal/config"
	"github.com/opencode-ai/quark/internal/logging"
)

var (
	cfgFile        string
	paletteName    string
	classPrefix    string
	logLevel       string
	jsonOutput     bool
	noColor        bool
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "quark",
	Short:         "Inspect theme and literal colors",
	Long:          "quark resolves theme color tokens to CSS class names and literal colors to style values.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./config.yaml or ~/.config/quark/config.yaml)")
	flags.StringVar(&paletteName, "palette", "", "palette used to resolve theme colors")
	flags.StringVar(&classPrefix, "prefix", "", "class name prefix")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start interactive views")
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		return err
	}
	return nil
}

func initConfig() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if paletteName != "" {
		cfg.Palette = paletteName
	}
	if classPrefix != "" {
		cfg.ClassPrefix = classPrefix
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}); err != nil {
		return err
	}
	if noColor {
		fcolor.NoColor = true
	}

	logger := logging.Component("cli")
	logger.Debug().
		Str("config", cfg.Source).
		Str("palette", cfg.Palette).
		Str("prefix", cfg.ClassPrefix).
		Msg("configuration loaded")

	appConfig = cfg
	return nil
}

// GetConfig returns the configuration resolved for the running command.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}
