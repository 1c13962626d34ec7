package palette

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencode-ai/quark/internal/logging"
)

// SearchPaths returns palette directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".quark", "palettes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "quark", "palettes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "quark", "palettes"))
	return paths
}

// LoadFromSearchPaths loads palettes with first-hit precedence; builtins come last.
func LoadFromSearchPaths(projectDir string) ([]*Palette, error) {
	return loadFromDirs(SearchPaths(projectDir))
}

func loadFromDirs(dirs []string) ([]*Palette, error) {
	logger := logging.Component("palette")
	seen := make(map[string]*Palette)
	order := make([]string, 0)

	add := func(p *Palette) {
		if prev, exists := seen[p.Name]; exists {
			logger.Debug().
				Str("palette", p.Name).
				Str("source", p.Source).
				Str("shadowed_by", prev.Source).
				Msg("palette shadowed")
			return
		}
		seen[p.Name] = p
		order = append(order, p.Name)
	}

	for _, dir := range dirs {
		palettes, err := LoadPalettesFromDir(dir)
		if err != nil {
			return nil, err
		}
		for _, p := range palettes {
			add(p)
		}
	}

	builtins, err := LoadBuiltinPalettes()
	if err != nil {
		return nil, err
	}
	for _, p := range builtins {
		add(p)
	}

	resolved := make([]*Palette, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	logger.Debug().Int("count", len(resolved)).Msg("palettes loaded")

	return resolved, nil
}

// Find loads a specific palette by name.
func Find(projectDir, name string) (*Palette, error) {
	palettes, err := LoadFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	return findIn(palettes, name)
}

func findIn(palettes []*Palette, name string) (*Palette, error) {
	for _, p := range palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPaletteNotFound, name)
}
