package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{ThemeDark, ThemeLight}, ThemeNames())
}

func TestPalettes_ChromaAndIcon(t *testing.T) {
	dark, ok := GetPalette(ThemeDark)
	require.True(t, ok)
	assert.Equal(t, "github-dark", dark.ChromaStyle)
	assert.Equal(t, "🌙", dark.Icon)

	light, ok := GetPalette(ThemeLight)
	require.True(t, ok)
	assert.Equal(t, "github", light.ChromaStyle)
	assert.Equal(t, "☀️", light.Icon)
}

func TestNextTheme(t *testing.T) {
	assert.Equal(t, ThemeLight, NextTheme(ThemeDark))
	assert.Equal(t, ThemeDark, NextTheme(ThemeLight))
	assert.Equal(t, DefaultTheme, NextTheme("solarized"))
}

func TestSetTheme_SwapsColors(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	light, _ := GetPalette(ThemeLight)
	SetTheme(light)

	assert.Equal(t, ThemeLight, CurrentPalette.Name)
	assert.Equal(t, light.Primary, ColorPrimary)
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, *colorHexPtr(ColorForeground), *cfg.Document.Color)
}

func TestHex(t *testing.T) {
	dark, _ := GetPalette(ThemeDark)
	assert.Equal(t, "#0d1117", Hex(dark.Background))
	assert.Empty(t, Hex(nil))
}

func TestFileIcon(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", IconFileGo},
		{"web/App.TSX", IconFileTS},
		{"build/Dockerfile", IconFileDocker},
		{"notes.txt", IconFileDefault},
		{"", IconFileDefault},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FileIcon(tt.path))
		})
	}
}
