package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	TranslationsFile = "translations.json"
	TemplateFile     = "base.svg"
)

//go:embed translations.json base.svg
var dataFS embed.FS

// Dir is the on-disk directory checked before the embedded copies.
type Dir string

// Load returns the named data file, preferring the copy on disk. The
// embedded copy is only used when the disk file does not exist; any other
// read error is returned.
func (d Dir) Load(name string) ([]byte, error) {
	clean := cleanDataPath(name)
	if d != "" {
		b, err := os.ReadFile(d.Path(clean))
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("data: load %s: %w", name, err)
		}
	}
	b, err := dataFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("data: load %s: %w", name, err)
	}
	return b, nil
}

// Path is where the named file lives on disk.
func (d Dir) Path(name string) string {
	return filepath.Join(string(d), filepath.FromSlash(cleanDataPath(name)))
}

func (d Dir) Translations() ([]byte, error) { return d.Load(TranslationsFile) }

func (d Dir) Template() ([]byte, error) { return d.Load(TemplateFile) }

func cleanDataPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "data/"); ok {
		return after
	}
	return s
}
