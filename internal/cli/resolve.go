// Package cli provides the resolve and tokens commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/quark/internal/color"
	"github.com/opencode-ai/quark/internal/colortype"
	"github.com/opencode-ai/quark/internal/config"
	"github.com/opencode-ai/quark/internal/palette"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(tokensCmd)
}

type resolveResult struct {
	Input string  `json:"input"`
	Kind  string  `json:"kind"`
	Class *string `json:"class"`
	CSS   *string `json:"css"`
	Value string  `json:"value"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <color>...",
	Short: "Show how colors render under the active palette",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		p, err := activePalette(cfg)
		if err != nil {
			return err
		}

		colors := resolveArgs(cfg, args)
		if IsJSONOutput() {
			results := make([]resolveResult, 0, len(colors))
			for i, c := range colors {
				result := resolveResult{Input: args[i], Kind: colorKind(c), Value: p.Resolve(c)}
				if c.IsTheme() {
					class := c.BuildClass(cfg.ClassPrefix)
					result.Class = &class
				}
				if css, ok := c.CSSValue(); ok {
					result.CSS = &css
				}
				results = append(results, result)
			}
			return writeJSON(cmd.OutOrStdout(), results)
		}

		rows := make([][]string, 0, len(colors))
		for i, c := range colors {
			class := c.BuildClass(cfg.ClassPrefix)
			css, hasCSS := c.CSSValue()
			rows = append(rows, []string{
				args[i],
				formatOptional(class, class != ""),
				formatOptional(css, hasCSS),
				formatOptional(p.Resolve(c), true),
				formatColorKind(c),
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"INPUT", "CLASS", "CSS", "VALUE", "KIND"}, rows)
	},
}

type tokenResult struct {
	Token string `json:"token"`
	Class string `json:"class"`
	Value string `json:"value"`
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List theme color tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		p, err := activePalette(cfg)
		if err != nil {
			return err
		}

		tokens := colortype.All()
		results := make([]tokenResult, 0, len(tokens))
		for _, token := range tokens {
			results = append(results, tokenResult{
				Token: token.String(),
				Class: color.FromTheme(token).BuildClass(cfg.ClassPrefix),
				Value: p.Colors[token],
			})
		}
		if IsJSONOutput() {
			return writeJSON(cmd.OutOrStdout(), results)
		}

		rows := make([][]string, 0, len(results))
		for _, result := range results {
			rows = append(rows, []string{result.Token, result.Class, result.Value})
		}
		return writeTable(cmd.OutOrStdout(), []string{"TOKEN", "CLASS", "VALUE"}, rows)
	},
}

func activePalette(cfg *config.Config) (*palette.Palette, error) {
	return palette.Find(cfg.ProjectDir, cfg.Palette)
}
