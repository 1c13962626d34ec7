// Package palette resolves theme tokens to concrete colors.
package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/opencode-ai/quark/internal/color"
	"github.com/opencode-ai/quark/internal/colortype"
)

var (
	// ErrPaletteNameRequired is returned when a palette has no name.
	ErrPaletteNameRequired = errors.New("palette name is required")
	// ErrPaletteNotFound is returned when a named palette does not exist.
	ErrPaletteNotFound = errors.New("palette not found")
)

// ValidationError describes an invalid palette field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("palette %s: %s", e.Field, e.Message)
}

// Palette maps every theme token to a hex color.
type Palette struct {
	Name        string
	Description string
	Colors      map[colortype.ColorType]string
	Source      string // file path or "builtin"
}

// Validate checks that the palette is named and defines a valid hex color
// for every token.
func (p *Palette) Validate() error {
	if p.Name == "" {
		return ErrPaletteNameRequired
	}
	for _, token := range colortype.All() {
		value, ok := p.Colors[token]
		if !ok || value == "" {
			return &ValidationError{Field: "colors." + token.String(), Message: "color is required"}
		}
		if _, err := colorful.Hex(value); err != nil {
			return &ValidationError{Field: "colors." + token.String(), Message: fmt.Sprintf("invalid hex color %q", value)}
		}
	}
	return nil
}

// Resolve returns the concrete value for c: the palette entry for theme
// colors, the literal itself otherwise.
func (p *Palette) Resolve(c color.Color) string {
	if token, ok := c.Theme(); ok {
		return p.Colors[token]
	}
	css, _ := c.CSSValue()
	return css
}
