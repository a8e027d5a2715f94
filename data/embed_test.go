package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TranslationsFile), []byte(`{"xx":{}}`), 0o644))

	got, err := Dir(dir).Translations()
	require.NoError(t, err)
	assert.Equal(t, `{"xx":{}}`, string(got))
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	cases := []struct {
		name string
		dir  Dir
	}{
		{"empty_dir", Dir(t.TempDir())},
		{"no_dir", Dir("")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.dir.Template()
			require.NoError(t, err)
			want, err := dataFS.ReadFile(TemplateFile)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadStripsDataPrefix(t *testing.T) {
	got, err := Dir("").Load("data/" + TranslationsFile)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestLoadUnknownFile(t *testing.T) {
	_, err := Dir(t.TempDir()).Load("missing.svg")
	assert.ErrorContains(t, err, "data: load missing.svg")
}

func TestLoadReportsUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	// a directory in place of the file is not "does not exist"
	require.NoError(t, os.Mkdir(filepath.Join(dir, TemplateFile), 0o755))

	_, err := Dir(dir).Template()
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("assets", "base.svg"), Dir("assets").Path("data/base.svg"))
}
