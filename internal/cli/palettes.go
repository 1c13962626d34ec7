// Package cli provides palette listing commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/quark/internal/color"
	"github.com/opencode-ai/quark/internal/colortype"
	"github.com/opencode-ai/quark/internal/palette"
)

func init() {
	rootCmd.AddCommand(palettesCmd)
	palettesCmd.AddCommand(palettesShowCmd)
}

type paletteSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Active      bool   `json:"active"`
}

type paletteDetail struct {
	Name   string                         `json:"name"`
	Source string                         `json:"source"`
	Colors map[colortype.ColorType]string `json:"colors"`
}

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List available palettes",
	Long:  "List builtin palettes and palette files found in .quark/palettes, ~/.config/quark/palettes and /usr/share/quark/palettes.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		palettes, err := palette.LoadFromSearchPaths(cfg.ProjectDir)
		if err != nil {
			return err
		}

		summaries := make([]paletteSummary, 0, len(palettes))
		for _, p := range palettes {
			summaries = append(summaries, paletteSummary{
				Name:        p.Name,
				Description: p.Description,
				Source:      p.Source,
				Active:      p.Name == cfg.Palette,
			})
		}
		if IsJSONOutput() {
			return writeJSON(cmd.OutOrStdout(), summaries)
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			marker := ""
			if s.Active {
				marker = "*"
			}
			rows = append(rows, []string{marker, s.Name, s.Source, s.Description})
		}
		return writeTable(cmd.OutOrStdout(), []string{"", "NAME", "SOURCE", "DESCRIPTION"}, rows)
	},
}

var palettesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show the colors of a palette",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		name := cfg.Palette
		if len(args) == 1 {
			name = args[0]
		}

		p, err := palette.Find(cfg.ProjectDir, name)
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return writeJSON(cmd.OutOrStdout(), paletteDetail{Name: p.Name, Source: p.Source, Colors: p.Colors})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", p.Name, p.Source)
		for _, token := range colortype.All() {
			c := color.FromTheme(token)
			label := fmt.Sprintf("%-9s", token)
			fmt.Fprintf(out, "%s  %-16s %s\n", palette.Swatch(p, c, label), c.BuildClass(cfg.ClassPrefix), p.Colors[token])
		}
		return nil
	},
}
