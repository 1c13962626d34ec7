// Package cli provides the interactive palette preview command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/quark/internal/palette"
	"github.com/opencode-ai/quark/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse palettes interactively",
	Long:  "Launch a terminal view that renders every theme token under each palette.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview()
	},
}

func runPreview() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "preview requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or print swatches instead",
			NextStep: "quark palettes show",
		}
	}

	cfg := GetConfig()
	palettes, err := palette.LoadFromSearchPaths(cfg.ProjectDir)
	if err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Palettes: palettes,
		Active:   cfg.Palette,
		Prefix:   cfg.ClassPrefix,
	})
}
