package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/hrevu/internal/core/styles"
)

func newStore(t *testing.T) *PrefsStore {
	t.Helper()
	return NewPrefsStore(filepath.Join(t.TempDir(), "nested", "prefs.json"))
}

func TestPrefsStore_MissingFile(t *testing.T) {
	s := newStore(t)

	var v string
	err := s.Get("anything", &v)
	require.ErrorIs(t, err, ErrNotFound)

	_, ok := s.Theme()
	assert.False(t, ok)
}

func TestPrefsStore_SetGet(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Set("count", 3))
	require.NoError(t, s.Set("name", "hrevu"))

	var n int
	require.NoError(t, s.Get("count", &n))
	assert.Equal(t, 3, n)

	var name string
	require.NoError(t, s.Get("name", &name))
	assert.Equal(t, "hrevu", name)

	_, err := os.Stat(s.path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestPrefsStore_ThemeRoundTrip(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.SaveTheme(styles.ThemeLight))
	theme, ok := s.Theme()
	require.True(t, ok)
	assert.Equal(t, styles.ThemeLight, theme)

	require.NoError(t, s.SaveTheme(styles.ThemeDark))
	theme, ok = s.Theme()
	require.True(t, ok)
	assert.Equal(t, styles.ThemeDark, theme)

	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hrevu-theme": "dark"`)
}

func TestPrefsStore_UnknownTheme(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Set(ThemeKey, "solarized"))
	_, ok := s.Theme()
	assert.False(t, ok)
}

func TestPrefsStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewPrefsStore(path)

	var v string
	err := s.Get(ThemeKey, &v)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, ok := s.Theme()
	assert.False(t, ok)
}
