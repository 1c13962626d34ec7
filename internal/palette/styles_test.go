package palette

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/quark/internal/color"
	"github.com/opencode-ai/quark/internal/colortype"
)

func TestContrastText(t *testing.T) {
	tests := []struct {
		background string
		want       string
	}{
		{background: "#FFFFFF", want: "#000000"},
		{background: "#F8F9FA", want: "#000000"},
		{background: "#000000", want: "#FFFFFF"},
		{background: "#212529", want: "#FFFFFF"},
		{background: "red", want: ""},
		{background: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.background, func(t *testing.T) {
			require.Equal(t, tt.want, ContrastText(tt.background))
		})
	}
}

func TestBuildStylesCoversEveryToken(t *testing.T) {
	palettes, err := LoadBuiltinPalettes()
	require.NoError(t, err)

	styles := BuildStyles(palettes[0])
	require.Same(t, palettes[0], styles.Palette)
	for _, token := range colortype.All() {
		_, ok := styles.Tokens[token]
		require.True(t, ok, "missing style for %s", token)
	}
}

func TestSwatchKeepsLabel(t *testing.T) {
	palettes, err := LoadBuiltinPalettes()
	require.NoError(t, err)
	def := palettes[0]

	require.Contains(t, Swatch(def, color.Success, "success"), "success")
	require.Contains(t, Swatch(def, color.FromCSS("#123456"), "custom"), "custom")
	require.Equal(t, "empty", Swatch(def, color.FromCSS(""), "empty"))
}
