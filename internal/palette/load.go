package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/quark/internal/colortype"
)

// paletteFile is the on-disk shape shared by YAML and TOML palettes.
type paletteFile struct {
	Name        string            `yaml:"name" toml:"name"`
	Description string            `yaml:"description" toml:"description"`
	Colors      map[string]string `yaml:"colors" toml:"colors"`
}

// LoadPalette reads a single palette from a .yaml, .yml or .toml file.
func LoadPalette(path string) (*Palette, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("palette path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}

	var p *Palette
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		p, err = parseTOML(data)
	default:
		p, err = parseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// LoadPalettesFromDir loads all palette files in dir, sorted by name.
// A missing directory yields no palettes.
func LoadPalettesFromDir(dir string) ([]*Palette, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Palette{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Palette{}, nil
		}
		return nil, fmt.Errorf("read palettes dir %s: %w", dir, err)
	}

	palettes := make([]*Palette, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isPaletteFile(entry.Name()) {
			continue
		}
		p, err := LoadPalette(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}

	sort.Slice(palettes, func(i, j int) bool {
		return palettes[i].Name < palettes[j].Name
	})

	return palettes, nil
}

func isPaletteFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

func parseYAML(data []byte) (*Palette, error) {
	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.palette()
}

func parseTOML(data []byte) (*Palette, error) {
	var file paletteFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, err
	}
	return file.palette()
}

func (f paletteFile) palette() (*Palette, error) {
	p := &Palette{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Colors:      make(map[colortype.ColorType]string, len(f.Colors)),
	}
	for key, value := range f.Colors {
		token, err := colortype.Parse(key)
		if err != nil {
			return nil, &ValidationError{Field: "colors." + key, Message: "unknown color type"}
		}
		p.Colors[token] = strings.TrimSpace(value)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
