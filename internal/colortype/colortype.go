// Package colortype defines the closed set of theme color tokens.
package colortype

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColorType is returned when a name does not match any token.
var ErrUnknownColorType = errors.New("unknown color type")

// ColorType identifies one named theme color. The zero value is not a token.
type ColorType uint8

const (
	Primary ColorType = iota + 1
	Secondary
	Success
	Danger
	Warning
	Info
	Light
	Dark
)

var names = [...]string{
	Primary:   "primary",
	Secondary: "secondary",
	Success:   "success",
	Danger:    "danger",
	Warning:   "warning",
	Info:      "info",
	Light:     "light",
	Dark:      "dark",
}

var all = [...]ColorType{Primary, Secondary, Success, Danger, Warning, Info, Light, Dark}

// All returns every token in declaration order.
func All() []ColorType {
	out := make([]ColorType, len(all))
	copy(out, all[:])
	return out
}

// Valid reports whether t is one of the declared tokens.
func (t ColorType) Valid() bool {
	return t >= Primary && t <= Dark
}

// String returns the canonical token name used in class names.
func (t ColorType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("colortype(%d)", uint8(t))
	}
	return names[t]
}

// Parse resolves a token by name, ignoring case and surrounding whitespace.
func Parse(name string) (ColorType, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for _, t := range all {
		if names[t] == norm {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColorType, name)
}

// Lookup returns the token whose canonical name is exactly name.
func Lookup(name string) (ColorType, bool) {
	for _, t := range all {
		if names[t] == name {
			return t, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (t ColorType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColorType, uint8(t))
	}
	return []byte(names[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ColorType) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
