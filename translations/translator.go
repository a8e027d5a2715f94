package translations

import (
	"fmt"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translator is a thin wrapper around go-i18n. Every language of the table
// gets its own bundle so a lookup never falls back to another language.
type Translator struct {
	table   *Table
	bundles map[string]*i18n.Bundle
}

// NewTranslator registers every language of t with go-i18n.
func NewTranslator(t *Table) (*Translator, error) {
	tr := &Translator{
		table:   t,
		bundles: make(map[string]*i18n.Bundle, len(t.codes)),
	}
	for _, code := range t.codes {
		b, err := newBundle(code, t.labels[code])
		if err != nil {
			return nil, fmt.Errorf("translations: register %q: %w", code, err)
		}
		tr.bundles[code] = b
	}
	return tr, nil
}

// newBundle builds a bundle for one language. Codes that are not BCP 47
// tags, or that have no plural rules, are registered under English rules.
func newBundle(code string, labels Labels) (*i18n.Bundle, error) {
	messages := make([]*i18n.Message, 0, len(labels))
	for key, text := range labels {
		messages = append(messages, &i18n.Message{ID: key, Other: text})
	}

	tag, err := language.Parse(code)
	if err == nil {
		b := i18n.NewBundle(tag)
		if err := b.AddMessages(tag, messages...); err == nil {
			return b, nil
		}
	}
	b := i18n.NewBundle(language.English)
	if err := b.AddMessages(language.English, messages...); err != nil {
		return nil, err
	}
	return b, nil
}

func (tr *Translator) Table() *Table { return tr.table }

// Label returns the display string for key in the given language. Labels
// are shown verbatim; only status messages go through templates.
func (tr *Translator) Label(code, key string) (string, error) {
	labels, err := tr.table.Lookup(code)
	if err != nil {
		return "", err
	}
	text, ok := labels[key]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrMissingLabel, code, key)
	}
	return text, nil
}

// T renders a templated message for the given language. If the key or the
// language is not found, it falls back to the key itself.
func (tr *Translator) T(code, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	b, ok := tr.bundles[code]
	if !ok {
		log.Printf("i18n: unknown language %q for key %s", code, key)
		return key
	}
	msg, err := i18n.NewLocalizer(b).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, lang=%s): %v", key, code, err)
		return key
	}
	return msg
}
