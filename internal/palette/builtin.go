package palette

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultName is the palette used when none is configured.
const DefaultName = "default"

// LoadBuiltinPalettes returns the palettes bundled with quark.
func LoadBuiltinPalettes() ([]*Palette, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin palettes: %w", err)
	}

	palettes := make([]*Palette, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin palette %s: %w", entry.Name(), err)
		}
		p, err := parseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin palette %s: %w", entry.Name(), err)
		}
		p.Source = "builtin"
		palettes = append(palettes, p)
	}

	sort.Slice(palettes, func(i, j int) bool {
		return palettes[i].Name < palettes[j].Name
	})

	return palettes, nil
}
