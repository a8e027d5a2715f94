// Package svgexport writes a stand chart by mutating the base SVG template:
// the stat polygon is appended to the "polygon" group and the contour color
// replaces the first stop of the "line_color" gradient.
package svgexport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/milk9111/standmaker/stand"
)

// Element ids the template must define.
const (
	PolygonID   = "polygon"
	LineColorID = "line_color"
)

var ErrElementNotFound = errors.New("svgexport: element not found")

// Chart is everything the export reads from the form.
type Chart struct {
	Points []stand.Point
	Look   stand.Look
}

// Apply mutates doc in place.
func Apply(doc *etree.Document, c Chart) error {
	group := doc.FindElement(byID(PolygonID))
	if group == nil {
		return fmt.Errorf("%w: #%s", ErrElementNotFound, PolygonID)
	}
	gradient := doc.FindElement(byID(LineColorID))
	if gradient == nil {
		return fmt.Errorf("%w: #%s", ErrElementNotFound, LineColorID)
	}
	stops := gradient.ChildElements()
	if len(stops) == 0 {
		return fmt.Errorf("%w: first child of #%s", ErrElementNotFound, LineColorID)
	}

	poly := group.CreateElement("polygon")
	poly.CreateAttr("points", stand.FormatPoints(c.Points))
	poly.CreateAttr("fill", c.Look.PolyFill)
	poly.CreateAttr("stroke", c.Look.PolyStroke)
	poly.CreateAttr("opacity", c.Look.PolyOpacity)

	stops[0].CreateAttr("stop-color", c.Look.Contour)
	return nil
}

func byID(id string) string {
	return fmt.Sprintf("//*[@id='%s']", id)
}

// Render parses template, applies the chart and returns the indented document.
func Render(template []byte, c Chart) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(template); err != nil {
		return nil, fmt.Errorf("svgexport: parse template: %w", err)
	}
	if err := Apply(doc, c); err != nil {
		return nil, err
	}
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("svgexport: serialize: %w", err)
	}
	return out, nil
}

// WriteFile stores data at path through a temporary file in the same
// directory, so path is either left untouched or fully written.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("svgexport: empty output path")
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("svgexport: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("svgexport: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("svgexport: write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("svgexport: chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("svgexport: rename to %s: %w", path, err)
	}
	return nil
}

// Export renders the chart and writes it to path. Nothing is written when
// rendering fails.
func Export(template []byte, path string, c Chart) error {
	out, err := Render(template, c)
	if err != nil {
		return err
	}
	return WriteFile(path, out)
}
