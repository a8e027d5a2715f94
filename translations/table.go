package translations

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownLanguage = errors.New("translations: unknown language")
	ErrMissingLabel    = errors.New("translations: missing label")
	ErrMalformed       = errors.New("translations: malformed table")
)

// Labels maps a label key to its display string for one language.
type Labels map[string]string

// Table is the translation data file: language code to labels, in the order
// the languages appear in the file.
type Table struct {
	codes  []string
	labels map[string]Labels
}

// Parse decodes a translation table. JSON is read token by token so the
// order of the languages survives; anything else is tried as YAML.
func Parse(data []byte) (*Table, error) {
	if json.Valid(data) {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseJSON(data []byte) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("translations: decode: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: expected an object of languages", ErrMalformed)
	}

	t := &Table{labels: make(map[string]Labels)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("translations: decode: %w", err)
		}
		code, _ := tok.(string)
		offset := dec.InputOffset()
		if _, dup := t.labels[code]; dup {
			return nil, fmt.Errorf("%w: offset %d: duplicate language %q", ErrMalformed, offset, code)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("translations: decode %q: %w", code, err)
		}
		labels, err := decodeJSONLabels(code, raw, offset)
		if err != nil {
			return nil, err
		}
		t.codes = append(t.codes, code)
		t.labels[code] = labels
	}
	if len(t.codes) == 0 {
		return nil, fmt.Errorf("%w: no languages", ErrMalformed)
	}
	return t, nil
}

func decodeJSONLabels(code string, raw json.RawMessage, offset int64) (Labels, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: offset %d: language %q is not an object", ErrMalformed, offset, code)
	}
	labels := make(Labels, len(fields))
	for key, value := range fields {
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			return nil, fmt.Errorf("%w: offset %d: label %s.%s is not a string", ErrMalformed, offset, code, key)
		}
		labels[key] = text
	}
	return labels, nil
}

// parseYAML walks the YAML node tree, which keeps mapping order.
func parseYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("translations: decode: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected an object of languages", ErrMalformed, root.Line)
	}

	t := &Table{labels: make(map[string]Labels, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		code := key.Value
		if _, dup := t.labels[code]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate language %q", ErrMalformed, key.Line, code)
		}
		labels, err := decodeLabels(code, value)
		if err != nil {
			return nil, err
		}
		t.codes = append(t.codes, code)
		t.labels[code] = labels
	}
	if len(t.codes) == 0 {
		return nil, fmt.Errorf("%w: no languages", ErrMalformed)
	}
	return t, nil
}

func decodeLabels(code string, n *yaml.Node) (Labels, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: language %q is not an object", ErrMalformed, n.Line, code)
	}
	labels := make(Labels, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: label %s.%s is not a string", ErrMalformed, v.Line, code, k.Value)
		}
		labels[k.Value] = v.Value
	}
	return labels, nil
}

func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("translations: read: %w", err)
	}
	return Parse(data)
}

func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("translations: load %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Languages returns the language codes in file order.
func (t *Table) Languages() []string {
	out := make([]string, len(t.codes))
	copy(out, t.codes)
	return out
}

// Default is the first language of the file. Callers that let the user pick
// an explicit language check it with Has first.
func (t *Table) Default() string {
	return t.codes[0]
}

func (t *Table) Has(code string) bool {
	_, ok := t.labels[code]
	return ok
}

// Lookup returns the labels of one language.
func (t *Table) Lookup(code string) (Labels, error) {
	labels, ok := t.labels[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return labels, nil
}

// Validate checks that every language carries every key.
func (t *Table) Validate(keys ...string) error {
	var errs []error
	for _, code := range t.codes {
		labels := t.labels[code]
		for _, key := range keys {
			if _, ok := labels[key]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s.%s", ErrMissingLabel, code, key))
			}
		}
	}
	return errors.Join(errs...)
}
