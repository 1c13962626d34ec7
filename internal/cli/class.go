// Package cli provides the class and css commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classCmd)
	rootCmd.AddCommand(cssCmd)
}

type classResult struct {
	Input string  `json:"input"`
	Class *string `json:"class"`
}

type cssResult struct {
	Input string  `json:"input"`
	CSS   *string `json:"css"`
}

var classCmd = &cobra.Command{
	Use:   "class <color>...",
	Short: "Print CSS class names for theme colors",
	Long:  "Print <prefix>-<token> for each theme color. Literal colors print an empty line.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		colors := resolveArgs(cfg, args)
		out := cmd.OutOrStdout()

		if IsJSONOutput() {
			results := make([]classResult, 0, len(colors))
			for i, c := range colors {
				result := classResult{Input: args[i]}
				if c.IsTheme() {
					class := c.BuildClass(cfg.ClassPrefix)
					result.Class = &class
				}
				results = append(results, result)
			}
			return writeJSON(out, results)
		}

		buf := make([]byte, 0, 64)
		for _, c := range colors {
			buf = c.AppendClass(buf[:0], cfg.ClassPrefix)
			buf = append(buf, '\n')
			if _, err := out.Write(buf); err != nil {
				return fmt.Errorf("write class: %w", err)
			}
		}
		return nil
	},
}

var cssCmd = &cobra.Command{
	Use:   "css <color>...",
	Short: "Print style values for literal colors",
	Long:  "Print the literal value of each custom color. Theme colors print an empty line.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors := resolveArgs(GetConfig(), args)
		out := cmd.OutOrStdout()

		if IsJSONOutput() {
			results := make([]cssResult, 0, len(colors))
			for i, c := range colors {
				result := cssResult{Input: args[i]}
				if css, ok := c.CSSValue(); ok {
					result.CSS = &css
				}
				results = append(results, result)
			}
			return writeJSON(out, results)
		}

		for _, c := range colors {
			css, _ := c.CSSValue()
			fmt.Fprintln(out, css)
		}
		return nil
	},
}
