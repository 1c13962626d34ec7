// Package tui implements the interactive palette preview.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/quark/internal/color"
	"github.com/opencode-ai/quark/internal/colortype"
	"github.com/opencode-ai/quark/internal/palette"
)

// Config controls the preview.
type Config struct {
	Palettes []*palette.Palette
	Active   string // palette selected at start
	Prefix   string // class prefix shown next to each token
}

// Run launches the preview program.
func Run(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type model struct {
	width    int
	height   int
	palettes []*palette.Palette
	styles   palette.Styles
	index    int
	cursor   int
	prefix   string
	tokens   []colortype.ColorType
}

const (
	minWidth  = 40
	minHeight = 14
)

func newModel(cfg Config) (model, error) {
	if len(cfg.Palettes) == 0 {
		return model{}, errors.New("no palettes to preview")
	}

	index := 0
	for i, p := range cfg.Palettes {
		if p.Name == cfg.Active {
			index = i
			break
		}
	}

	return model{
		palettes: cfg.Palettes,
		styles:   palette.BuildStyles(cfg.Palettes[index]),
		index:    index,
		prefix:   cfg.Prefix,
		tokens:   colortype.All(),
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			m = m.selectPalette(m.index + 1)
		case "left", "h", "shift+tab":
			m = m.selectPalette(m.index - 1)
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(m.tokens)
		case "up", "k":
			m.cursor = (m.cursor - 1 + len(m.tokens)) % len(m.tokens)
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) selectPalette(index int) model {
	n := len(m.palettes)
	m.index = (index%n + n) % n
	m.styles = palette.BuildStyles(m.palettes[m.index])
	return m
}

func (m model) current() *palette.Palette {
	return m.palettes[m.index]
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return strings.Join(m.smallViewLines(), "\n") + "\n"
		}
	}

	p := m.current()
	lines := []string{
		m.styles.Title.Render(fmt.Sprintf("Palette %d/%d: %s", m.index+1, len(m.palettes), p.Name)),
	}
	if p.Description != "" {
		lines = append(lines, m.styles.Muted.Render(p.Description))
	}
	lines = append(lines, "")

	for i, token := range m.tokens {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		c := color.FromTheme(token)
		swatch := m.styles.Tokens[token].Render(fmt.Sprintf("%-9s", token))
		lines = append(lines, fmt.Sprintf("%s%s  %-16s %s", marker, swatch, c.BuildClass(m.prefix), p.Colors[token]))
	}

	lines = append(lines, "", m.styles.Muted.Render("Source: "+p.Source))
	lines = append(lines, "", m.styles.Muted.Render("Keys: left/right palette | up/down token | q quit"))

	return strings.Join(lines, "\n") + "\n"
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}
