package translations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `{
    "fr": {
        "window_title": "Créateur de Stand",
        "save_button": "Enregistrer",
        "status_saved": "Enregistré : {{.Path}}"
    },
    "en": {
        "window_title": "Stand Maker",
        "save_button": "Save",
        "status_saved": "Saved to {{.Path}}"
    },
    "jp": {
        "window_title": "スタンドメーカー",
        "save_button": "保存"
    }
}`

func TestParseKeepsFileOrder(t *testing.T) {
	table, err := Parse([]byte(sampleTable))
	require.NoError(t, err)

	assert.Equal(t, []string{"fr", "en", "jp"}, table.Languages())
	assert.Equal(t, "fr", table.Default())
	assert.True(t, table.Has("jp"))
	assert.False(t, table.Has("de"))

	labels, err := table.Lookup("jp")
	require.NoError(t, err)
	assert.Equal(t, "保存", labels["save_button"])
}

func TestParseRejectsMalformedTables(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"array", `["en"]`},
		{"no_languages", `{}`},
		{"language_not_object", `{"en": "Stand Maker"}`},
		{"label_not_string", `{"en": {"save_button": ["Save"]}}`},
		{"duplicate_language", "{\"en\": {}, \"en\": {}}"},
		{"null_language", `{"en": null}`},
		{"yaml_label_not_string", "en:\n  save_button: [Save]\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.in))
			require.Error(t, err)
		})
	}
}

func TestLookupUnknownLanguage(t *testing.T) {
	table, err := Parse([]byte(sampleTable))
	require.NoError(t, err)

	_, err = table.Lookup("de")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestValidateReportsEveryMissingLabel(t *testing.T) {
	table, err := Parse([]byte(sampleTable))
	require.NoError(t, err)

	require.NoError(t, table.Validate("window_title", "save_button"))

	err = table.Validate("window_title", "status_saved", "stats_title")
	require.ErrorIs(t, err, ErrMissingLabel)
	msg := err.Error()
	assert.Contains(t, msg, "jp.status_saved")
	assert.Contains(t, msg, "fr.stats_title")
	assert.Equal(t, 4, strings.Count(msg, "missing label"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", table.Default())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	table, err = Load(strings.NewReader(sampleTable))
	require.NoError(t, err)
	assert.Len(t, table.Languages(), 3)
}

func TestParseAcceptsEveryJSONEscape(t *testing.T) {
	table, err := Parse([]byte(`{"en": {"output_label": "Dossier\/fichier", "power": "Énergie", "quote": "\"x\"\tq"}, "fr": {}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, table.Languages())

	labels, err := table.Lookup("en")
	require.NoError(t, err)
	assert.Equal(t, "Dossier/fichier", labels["output_label"])
	assert.Equal(t, "Énergie", labels["power"])
	assert.Equal(t, "\"x\"\tq", labels["quote"])
}

func TestParseYAMLTable(t *testing.T) {
	table, err := Parse([]byte("it:\n  save_button: Salva\nen:\n  save_button: Save\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"it", "en"}, table.Languages())
}
