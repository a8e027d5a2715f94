package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsDataFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(Dir(dir))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TranslationsFile), []byte(`{}`), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, TranslationsFile, name)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for translations file")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(Dir(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(Dir(filepath.Join(t.TempDir(), "missing")))
	assert.Error(t, err)
}

func TestWatcherReportsLastWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TranslationsFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"en":{"a":"old"}}`), 0o644))

	w, err := NewWatcher(Dir(dir))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`{"en":{"a":`), 0o644))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"en":{"a":"new"}}`), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, TranslationsFile, name)
		got, err := Dir(dir).Translations()
		require.NoError(t, err)
		assert.Equal(t, `{"en":{"a":"new"}}`, string(got))
	case <-time.After(5 * time.Second):
		t.Fatal("no event for translations file")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("second event for %s after the file settled", name)
	case <-time.After(3 * debounce):
	}
}
