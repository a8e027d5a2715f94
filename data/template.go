package data

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/milk9111/standmaker/stand"
)

const (
	// TemplateSize is the width and height of the base template.
	TemplateSize = 128
	// TemplateMarks is the number of rings drawn around the center.
	TemplateMarks = 5

	// svgo only takes integer coordinates; the grid is drawn in hundredths
	// of a template unit and scaled back down.
	gridScale = 100
)

// GenerateBase writes the default base template: an empty "polygon" group
// for the stat polygon, a "line_color" gradient whose first stop is the
// contour color, and the hexagonal grid stroked with that gradient.
func GenerateBase(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	canvas.Startview(TemplateSize, TemplateSize, 0, 0, TemplateSize, TemplateSize)
	canvas.Title("stand")
	canvas.Def()
	canvas.LinearGradient("line_color", 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: "#000000", Opacity: 1},
		{Offset: 100, Color: "#000000", Opacity: 1},
	})
	canvas.DefEnd()

	canvas.Group(
		`transform="translate(64,64) scale(0.01)"`,
		"fill:none;stroke:#b0b0b0;stroke-width:50",
	)
	for _, stat := range stand.AllStats {
		x, y := gridVertex(stat, TemplateMarks)
		canvas.Line(0, 0, x, y)
	}
	canvas.Gend()

	canvas.Gid("polygon")
	canvas.Gend()

	canvas.Group(
		`transform="translate(64,64) scale(0.01)"`,
		"fill:none;stroke:url(#line_color);stroke-width:100",
	)
	for mark := 1; mark <= TemplateMarks; mark++ {
		xs := make([]int, 0, len(stand.AllStats))
		ys := make([]int, 0, len(stand.AllStats))
		for _, stat := range stand.AllStats {
			x, y := gridVertex(stat, mark)
			xs = append(xs, x)
			ys = append(ys, y)
		}
		canvas.Polygon(xs, ys)
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

// gridVertex is stand.Vertex relative to the center, in grid units.
func gridVertex(stat stand.Stat, mark int) (int, int) {
	p := stand.Vertex(stat, mark)
	return int(math.Round((p.X - stand.Center) * gridScale)),
		int(math.Round((p.Y - stand.Center) * gridScale))
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
