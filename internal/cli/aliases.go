// Package cli provides the aliases command.
package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(aliasesCmd)
}

type aliasResult struct {
	Name  string  `json:"name"`
	Value string  `json:"value"`
	Kind  string  `json:"kind"`
	Class *string `json:"class"`
	CSS   *string `json:"css"`
}

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List color aliases from the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		colors := cfg.NamedColors()

		results := make([]aliasResult, 0, len(colors))
		for _, name := range cfg.ColorNames() {
			c := colors[name]
			text, err := c.MarshalText()
			if err != nil {
				return err
			}
			result := aliasResult{Name: name, Value: string(text), Kind: colorKind(c)}
			if c.IsTheme() {
				class := c.BuildClass(cfg.ClassPrefix)
				result.Class = &class
			}
			if css, ok := c.CSSValue(); ok {
				result.CSS = &css
			}
			results = append(results, result)
		}
		if IsJSONOutput() {
			return writeJSON(cmd.OutOrStdout(), results)
		}

		rows := make([][]string, 0, len(results))
		for _, r := range results {
			class, css := "", ""
			if r.Class != nil {
				class = *r.Class
			}
			if r.CSS != nil {
				css = *r.CSS
			}
			rows = append(rows, []string{r.Name, r.Value, formatOptional(class, r.Class != nil), formatOptional(css, r.CSS != nil), r.Kind})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "VALUE", "CLASS", "CSS", "KIND"}, rows)
	},
}
