// Package color provides Color, a value that is either a named theme token or
// a literal presentation value such as a CSS color string.
//
// Theme colors render as CSS class names:
//
//	color.Danger.BuildClass("text") // "text-danger"
//
// Literal colors render as style values:
//
//	css, ok := color.FromCSS("#ff0000").CSSValue() // "#ff0000", true
//
// A Color is immutable and comparable with ==. The zero value is the empty
// literal, so a Color can never hold both variants or neither.
package color

import (
	"strings"

	"github.com/opencode-ai/quark/internal/colortype"
)

// LiteralPrefix marks text that must decode as a literal even when the rest
// spells a token name, e.g. "css:primary".
const LiteralPrefix = "css:"

// Color is either a theme token or a literal value.
type Color struct {
	theme colortype.ColorType
	css   string
}

// Pre-built theme colors.
var (
	Primary   = FromTheme(colortype.Primary)
	Secondary = FromTheme(colortype.Secondary)
	Success   = FromTheme(colortype.Success)
	Danger    = FromTheme(colortype.Danger)
	Warning   = FromTheme(colortype.Warning)
	Info      = FromTheme(colortype.Info)
	Light     = FromTheme(colortype.Light)
	Dark      = FromTheme(colortype.Dark)
)

// FromTheme returns a Color referring to the theme token t.
// Values outside the declared tokens yield the empty literal.
func FromTheme(t colortype.ColorType) Color {
	if !t.Valid() {
		return Color{}
	}
	return Color{theme: t}
}

// FromCSS returns a literal Color. The value is not validated.
func FromCSS(css string) Color {
	return Color{css: css}
}

// Parse converts text to a Color. A canonical token name such as "danger"
// selects the theme color; text starting with LiteralPrefix is the literal
// after the prefix; anything else is kept verbatim as a literal.
func Parse(s string) Color {
	if css, ok := strings.CutPrefix(s, LiteralPrefix); ok {
		return FromCSS(css)
	}
	if t, ok := colortype.Lookup(s); ok {
		return FromTheme(t)
	}
	return FromCSS(s)
}

// IsTheme reports whether c refers to a theme token.
func (c Color) IsTheme() bool {
	return c.theme.Valid()
}

// Theme returns the token and true for theme colors.
func (c Color) Theme() (colortype.ColorType, bool) {
	return c.theme, c.IsTheme()
}

// CSSValue returns the literal value and true for literal colors, and
// "", false for theme colors.
func (c Color) CSSValue() (string, bool) {
	if c.IsTheme() {
		return "", false
	}
	return c.css, true
}

// BuildClass returns "<prefix>-<token>" for theme colors and "" for literals.
func (c Color) BuildClass(prefix string) string {
	if !c.IsTheme() {
		return ""
	}
	return prefix + "-" + c.theme.String()
}

// AppendClass appends the class BuildClass would return to dst and returns
// the extended slice. Literal colors leave dst untouched.
func (c Color) AppendClass(dst []byte, prefix string) []byte {
	if !c.IsTheme() {
		return dst
	}
	dst = append(dst, prefix...)
	dst = append(dst, '-')
	return append(dst, c.theme.String()...)
}

// String returns the token name or the literal value.
func (c Color) String() string {
	if c.IsTheme() {
		return c.theme.String()
	}
	return c.css
}

// MarshalText implements encoding.TextMarshaler. Literals that Parse would
// read differently are escaped with LiteralPrefix, so UnmarshalText always
// restores an equal Color.
func (c Color) MarshalText() ([]byte, error) {
	if c.IsTheme() {
		return []byte(c.theme.String()), nil
	}
	if _, isToken := colortype.Lookup(c.css); isToken || strings.HasPrefix(c.css, LiteralPrefix) {
		return []byte(LiteralPrefix + c.css), nil
	}
	return []byte(c.css), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse rules.
func (c *Color) UnmarshalText(text []byte) error {
	*c = Parse(string(text))
	return nil
}
