// Package cli provides color kind formatting helpers.
package cli

import (
	fcolor "github.com/fatih/color"

	"github.com/opencode-ai/quark/internal/color"
	"github.com/opencode-ai/quark/internal/config"
)

const (
	kindTheme   = "theme"
	kindLiteral = "literal"
)

func colorKind(c color.Color) string {
	if c.IsTheme() {
		return kindTheme
	}
	return kindLiteral
}

func formatColorKind(c color.Color) string {
	kind := colorKind(c)
	if c.IsTheme() {
		return colorize(kind, fcolor.FgGreen)
	}
	return colorize(kind, fcolor.FgCyan)
}

func colorize(text string, attrs ...fcolor.Attribute) string {
	return fcolor.New(attrs...).Sprint(text)
}

// resolveArgs maps command arguments to colors. Configured aliases win over
// token names; anything else is a literal.
func resolveArgs(cfg *config.Config, args []string) []color.Color {
	aliases := cfg.NamedColors()
	colors := make([]color.Color, 0, len(args))
	for _, arg := range args {
		if c, ok := aliases[arg]; ok {
			colors = append(colors, c)
			continue
		}
		colors = append(colors, color.Parse(arg))
	}
	return colors
}
