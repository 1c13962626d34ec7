package palette

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/opencode-ai/quark/internal/color"
	"github.com/opencode-ai/quark/internal/colortype"
)

// Styles contains lipgloss styles derived from a palette.
type Styles struct {
	Palette *Palette
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Tokens  map[colortype.ColorType]lipgloss.Style
}

// BuildStyles converts palette colors into lipgloss styles.
func BuildStyles(p *Palette) Styles {
	tokens := make(map[colortype.ColorType]lipgloss.Style, len(p.Colors))
	for token, hex := range p.Colors {
		tokens[token] = swatchStyle(hex)
	}

	return Styles{
		Palette: p,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Colors[colortype.Primary])).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Colors[colortype.Secondary])),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Colors[colortype.Warning])),
		Tokens:  tokens,
	}
}

// Swatch renders label on the background c resolves to under p.
// Literals that are not hex colors are passed to lipgloss unchanged.
func Swatch(p *Palette, c color.Color, label string) string {
	value := p.Resolve(c)
	if value == "" {
		return label
	}
	return swatchStyle(value).Render(label)
}

func swatchStyle(background string) lipgloss.Style {
	style := lipgloss.NewStyle().Background(lipgloss.Color(background)).Padding(0, 1)
	if fg := ContrastText(background); fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	return style
}

// ContrastText returns black or white, whichever reads better on background.
// It returns "" when background is not a hex color.
func ContrastText(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return ""
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
