package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/quark/internal/palette"
)

const oceanPalette = `name: ocean
description: Cool blues
colors:
  primary: "#1B4F72"
  secondary: "#5D6D7E"
  success: "#117A65"
  danger: "#943126"
  warning: "#B9770E"
  info: "#2E86C1"
  light: "#EBF5FB"
  dark: "#0B1F3A"
`

// setupProject writes a config file and a project palette, and isolates HOME.
func setupProject(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	paletteDir := filepath.Join(project, ".quark", "palettes")
	require.NoError(t, os.MkdirAll(paletteDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(paletteDir, "ocean.yaml"), []byte(oceanPalette), 0o644))

	cfgPath := filepath.Join(project, "config.yaml")
	cfg := "palette: default\nclass_prefix: text\nproject_dir: " + project + "\ncolors:\n  brand: \"#123456\"\n  alert: danger\n  plain: \"css:primary\"\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	return cfgPath
}

func runCLI(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()

	cfgFile, paletteName, classPrefix, logLevel = "", "", "", ""
	jsonOutput, noColor, nonInteractive = false, false, false
	appConfig = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath, "--no-color"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassCommand(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "class", "primary", "#ff0000", "brand", "alert")
	require.NoError(t, err)
	require.Equal(t, "text-primary\n\n\ntext-danger\n", out)
}

func TestClassCommandPrefixJSON(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "--prefix", "bg", "--json", "class", "success", "rgb(1,2,3)")
	require.NoError(t, err)

	var results []classResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	require.NotNil(t, results[0].Class)
	require.Equal(t, "bg-success", *results[0].Class)
	require.Nil(t, results[1].Class)
}

func TestCSSCommand(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "css", "#ff0000", "info", "brand")
	require.NoError(t, err)
	require.Equal(t, "#ff0000\n\n#123456\n", out)

	out, err = runCLI(t, cfgPath, "--json", "css", "", "dark")
	require.NoError(t, err)

	var results []cssResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotNil(t, results[0].CSS)
	require.Equal(t, "", *results[0].CSS)
	require.Nil(t, results[1].CSS)
}

func TestAliasesCommand(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "--json", "aliases")
	require.NoError(t, err)

	var results []aliasResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)

	require.Equal(t, "alert", results[0].Name)
	require.Equal(t, "theme", results[0].Kind)
	require.Equal(t, "text-danger", *results[0].Class)

	require.Equal(t, "brand", results[1].Name)
	require.Equal(t, "#123456", *results[1].CSS)

	require.Equal(t, "plain", results[2].Name)
	require.Equal(t, "literal", results[2].Kind)
	require.Equal(t, "css:primary", results[2].Value)
	require.Nil(t, results[2].Class)
	require.Equal(t, "primary", *results[2].CSS)
}

func TestTokenSpelledAliasPrintsNoClass(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "class", "plain", "primary")
	require.NoError(t, err)
	require.Equal(t, "\ntext-primary\n", out)
}

func TestTokensCommand(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "tokens")
	require.NoError(t, err)
	require.Contains(t, out, "TOKEN")
	require.Contains(t, out, "text-warning")
	require.Contains(t, out, "#FFC107")
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 9)
}

func TestResolveCommandUsesProjectPalette(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "--palette", "ocean", "--json", "resolve", "danger", "#abcdef")
	require.NoError(t, err)

	var results []resolveResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	require.Equal(t, "theme", results[0].Kind)
	require.Equal(t, "text-danger", *results[0].Class)
	require.Nil(t, results[0].CSS)
	require.Equal(t, "#943126", results[0].Value)

	require.Equal(t, "literal", results[1].Kind)
	require.Nil(t, results[1].Class)
	require.Equal(t, "#abcdef", *results[1].CSS)
	require.Equal(t, "#abcdef", results[1].Value)
}

func TestResolveCommandTable(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "resolve", "primary")
	require.NoError(t, err)
	require.Contains(t, out, "text-primary")
	require.Contains(t, out, "#0D6EFD")
	require.Contains(t, out, "theme")
}

func TestUnknownPalette(t *testing.T) {
	cfgPath := setupProject(t)

	_, err := runCLI(t, cfgPath, "--palette", "sepia", "tokens")
	require.ErrorIs(t, err, palette.ErrPaletteNotFound)
}

func TestPalettesCommand(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "--json", "palettes")
	require.NoError(t, err)

	var summaries []paletteSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))

	names := make([]string, 0, len(summaries))
	for _, s := range summaries {
		names = append(names, s.Name)
		if s.Name == "default" {
			require.True(t, s.Active)
		} else {
			require.False(t, s.Active)
		}
	}
	require.Equal(t, []string{"ocean", "default", "high-contrast"}, names)
}

func TestPalettesShowCommand(t *testing.T) {
	cfgPath := setupProject(t)

	out, err := runCLI(t, cfgPath, "palettes", "show", "ocean")
	require.NoError(t, err)
	require.Contains(t, out, "ocean (")
	require.Contains(t, out, "text-light")
	require.Contains(t, out, "#EBF5FB")

	out, err = runCLI(t, cfgPath, "--json", "palettes", "show", "high-contrast")
	require.NoError(t, err)

	var detail struct {
		Name   string            `json:"name"`
		Colors map[string]string `json:"colors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &detail))
	require.Equal(t, "high-contrast", detail.Name)
	require.Equal(t, "#FF4040", detail.Colors["danger"])
}

func TestPreviewRequiresInteractiveTerminal(t *testing.T) {
	cfgPath := setupProject(t)

	_, err := runCLI(t, cfgPath, "--non-interactive", "preview")

	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		t.Fatalf("expected PreflightError, got %v", err)
	}
	msg := formatError(err)
	require.Contains(t, msg, "interactive terminal")
	require.Contains(t, msg, "Next: quark palettes show")
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  format: xml\n"), 0o644))

	_, err := runCLI(t, cfgPath, "tokens")
	require.Error(t, err)
}

func TestFormatError(t *testing.T) {
	require.Equal(t, "Error: boom", formatError(errors.New("boom")))
	require.Equal(t, "Error: no tty\nHint: use a terminal", formatError(&PreflightError{Message: "no tty", Hint: "use a terminal"}))
}
