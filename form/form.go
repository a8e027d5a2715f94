// Package form owns the state of the stand maker window: the stat and
// appearance values, the active language with its label bindings, and the
// save trigger.
package form

import (
	"errors"
	"fmt"

	"github.com/milk9111/standmaker/stand"
	"github.com/milk9111/standmaker/svgexport"
	"github.com/milk9111/standmaker/translations"
)

var ErrSaveDisabled = errors.New("form: save is disabled until a color changes")

// Label keys every language must define.
const (
	KeyWindowTitle     = "window_title"
	KeyStatsTitle      = "stats_title"
	KeyAppearanceTitle = "appearance_title"
	KeyContour         = "contour"
	KeyPolyFill        = "poly_fill"
	KeyPolyStroke      = "poly_stroke"
	KeyPolyOpacity     = "poly_opacity"
	KeyLanguageTitle   = "language_title"
	KeyOutputLabel     = "output_label"
	KeySaveButton      = "save_button"
	KeyCopyButton      = "copy_button"
)

// Status messages. These are optional; a missing one shows its key.
const (
	StatusSaved    = "status_saved"
	StatusFailed   = "status_failed"
	StatusCopied   = "status_copied"
	StatusReloaded = "status_reloaded"
)

// LabelKeys lists the keys checked against the translation table at startup.
// The stat labels are keyed by the stat name.
func LabelKeys() []string {
	keys := []string{
		KeyWindowTitle, KeyStatsTitle, KeyAppearanceTitle,
		KeyContour, KeyPolyFill, KeyPolyStroke, KeyPolyOpacity,
		KeyLanguageTitle, KeyOutputLabel, KeySaveButton, KeyCopyButton,
	}
	for _, stat := range stand.AllStats {
		keys = append(keys, stat.String())
	}
	return keys
}

type Options struct {
	Translator *translations.Translator
	// Language is the starting language. Empty picks the first language of
	// the table.
	Language   string
	Stat       string
	Appearance stand.Look
	// Template returns the base SVG document; it is called on every export
	// so edits to the file on disk are picked up.
	Template func() ([]byte, error)
}

type binding struct {
	key string
	set func(string)
}

type Form struct {
	Stats      *stand.Stats
	Appearance *stand.Appearance
	Trigger    *SaveTrigger

	tr       *translations.Translator
	lang     string
	template func() ([]byte, error)
	bindings []binding
}

func New(opts Options) (*Form, error) {
	if opts.Translator == nil {
		return nil, errors.New("form: no translator")
	}
	if opts.Template == nil {
		return nil, errors.New("form: no template source")
	}
	lang, err := resolveLanguage(opts.Translator.Table(), opts.Language)
	if err != nil {
		return nil, err
	}

	f := &Form{
		Stats:      stand.NewStats(opts.Stat),
		Appearance: stand.NewAppearance(opts.Appearance),
		Trigger:    &SaveTrigger{},
		tr:         opts.Translator,
		lang:       lang,
		template:   opts.Template,
	}
	f.Appearance.ObserveColors(f.Trigger)
	return f, nil
}

func resolveLanguage(t *translations.Table, code string) (string, error) {
	if code == "" {
		return t.Default(), nil
	}
	if !t.Has(code) {
		return "", fmt.Errorf("%w: %q", translations.ErrUnknownLanguage, code)
	}
	return code, nil
}

func (f *Form) Language() string { return f.lang }

func (f *Form) Languages() []string { return f.tr.Table().Languages() }

func (f *Form) Label(key string) (string, error) { return f.tr.Label(f.lang, key) }

// Bind registers set as the display of key and applies the current label.
func (f *Form) Bind(key string, set func(string)) error {
	text, err := f.tr.Label(f.lang, key)
	if err != nil {
		return err
	}
	f.bindings = append(f.bindings, binding{key: key, set: set})
	set(text)
	return nil
}

// SetLanguage re-renders every bound label in code. If any label cannot be
// resolved, no label is changed.
func (f *Form) SetLanguage(code string) error {
	texts, err := f.resolve(f.tr, code)
	if err != nil {
		return err
	}
	f.lang = code
	f.apply(texts)
	return nil
}

// SetTranslator swaps in a reloaded table. The active language is kept when
// the new table still has it, otherwise the new default is used.
func (f *Form) SetTranslator(tr *translations.Translator) error {
	code := f.lang
	if !tr.Table().Has(code) {
		code = tr.Table().Default()
	}
	texts, err := f.resolve(tr, code)
	if err != nil {
		return err
	}
	f.tr = tr
	f.lang = code
	f.apply(texts)
	return nil
}

func (f *Form) resolve(tr *translations.Translator, code string) ([]string, error) {
	if !tr.Table().Has(code) {
		return nil, fmt.Errorf("%w: %q", translations.ErrUnknownLanguage, code)
	}
	texts := make([]string, len(f.bindings))
	for i, b := range f.bindings {
		text, err := tr.Label(code, b.key)
		if err != nil {
			return nil, err
		}
		texts[i] = text
	}
	return texts, nil
}

func (f *Form) apply(texts []string) {
	for i, b := range f.bindings {
		b.set(texts[i])
	}
}

// Status renders a status line message in the active language.
func (f *Form) Status(key string, data map[string]any) string {
	return f.tr.T(f.lang, key, data)
}

// Observe registers o on every stat and appearance value.
func (f *Form) Observe(o stand.Observer) {
	f.Stats.Observe(o)
	f.Appearance.Observe(o)
}

// Chart reads the current values. It fails when a stat is not an integer.
func (f *Form) Chart() (svgexport.Chart, error) {
	points, err := f.Stats.Points()
	if err != nil {
		return svgexport.Chart{}, err
	}
	return svgexport.Chart{Points: points, Look: f.Appearance.Look()}, nil
}

// Render returns the exported document without writing it.
func (f *Form) Render() ([]byte, error) {
	chart, err := f.Chart()
	if err != nil {
		return nil, err
	}
	template, err := f.template()
	if err != nil {
		return nil, err
	}
	return svgexport.Render(template, chart)
}

// Save exports the current values to path.
func (f *Form) Save(path string) error {
	if !f.Trigger.Enabled() {
		return ErrSaveDisabled
	}
	out, err := f.Render()
	if err != nil {
		return err
	}
	return svgexport.WriteFile(path, out)
}
