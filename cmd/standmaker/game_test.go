package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/standmaker/data"
	"github.com/milk9111/standmaker/form"
	"github.com/milk9111/standmaker/translations"
)

func TestLoadTranslatorEmbedded(t *testing.T) {
	tr, err := loadTranslator(data.Dir(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr", "it"}, tr.Table().Languages())
}

func TestLoadTranslatorRejectsMissingLabels(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, data.TranslationsFile), []byte(`{"en": {"save_button": "Save"}}`), 0o644))

	_, err := loadTranslator(data.Dir(dir))
	assert.ErrorIs(t, err, translations.ErrMissingLabel)
}

func TestSetLanguageIgnoresActiveLanguage(t *testing.T) {
	tr, err := loadTranslator(data.Dir(""))
	require.NoError(t, err)
	f, err := form.New(form.Options{Translator: tr, Language: "fr", Template: data.Dir("").Template})
	require.NoError(t, err)

	// no UI: reselecting the active language must return before touching it
	g := &StandMaker{form: f}
	assert.NotPanics(t, func() { g.setLanguage("fr") })
	assert.Equal(t, "fr", f.Language())
}
