package main

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/image/colornames"

	"github.com/milk9111/standmaker/data"
	"github.com/milk9111/standmaker/form"
	"github.com/milk9111/standmaker/stand"
)

// rgba is a straight-alpha color in the 0..1 range, as DrawTriangles expects
// for vertex colors.
type rgba struct {
	R, G, B, A float32
}

func (c rgba) Color() color.Color {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

func fromColor(c color.Color) rgba {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rgba{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

// previewColor parses a CSS color. Values the parser rejects are still
// exported verbatim; the preview just draws them with fallback.
func previewColor(s string, fallback color.Color) rgba {
	c, err := csscolorparser.Parse(strings.TrimSpace(s))
	if err != nil {
		return fromColor(fallback)
	}
	return rgba{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// previewOpacity reads the SVG opacity attribute. Anything unparsable draws
// fully opaque; the value is clamped to 0..1 like a browser does.
func previewOpacity(s string) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 1
	}
	return float32(min(max(v, 0), 1))
}

// Preview draws the radar chart of the form at Scale times the template size.
type Preview struct {
	X, Y  float32
	Scale float32

	form  *form.Form
	dirty bool
	white *ebiten.Image

	points  []stand.Point
	contour rgba
	fill    rgba
	stroke  rgba
}

func NewPreview(f *form.Form, x, y, scale float32) *Preview {
	p := &Preview{X: x, Y: y, Scale: scale, form: f, dirty: true}
	f.Observe(stand.ObserverFunc(func() { p.dirty = true }))
	return p
}

func (p *Preview) refresh() {
	p.dirty = false
	look := p.form.Appearance.Look()
	p.contour = previewColor(look.Contour, colornames.Black)
	p.fill = previewColor(look.PolyFill, colornames.Lightgray)
	p.stroke = previewColor(look.PolyStroke, colornames.Black)
	opacity := previewOpacity(look.PolyOpacity)
	p.fill.A *= opacity
	p.stroke.A *= opacity

	points, err := p.form.Stats.Points()
	if err != nil {
		p.points = nil
		return
	}
	p.points = points
}

func (p *Preview) toScreen(pt stand.Point) (float32, float32) {
	return p.X + float32(pt.X)*p.Scale, p.Y + float32(pt.Y)*p.Scale
}

func (p *Preview) Draw(screen *ebiten.Image) {
	if p.white == nil {
		p.white = ebiten.NewImage(1, 1)
		p.white.Fill(color.White)
	}
	if p.dirty {
		p.refresh()
	}

	size := float32(data.TemplateSize) * p.Scale
	vector.FillRect(screen, p.X, p.Y, size, size, colornames.White, false)

	center := stand.Point{X: stand.Center, Y: stand.Center}
	cx, cy := p.toScreen(center)
	for _, stat := range stand.AllStats {
		x, y := p.toScreen(stand.Vertex(stat, data.TemplateMarks))
		vector.StrokeLine(screen, cx, cy, x, y, 0.5*p.Scale, colornames.Darkgray, true)
	}

	if len(p.points) > 0 {
		p.fillPolygon(screen, p.points, p.fill)
		p.strokePolygon(screen, p.points, p.stroke, 0.5*p.Scale)
	}

	contour := p.contour.Color()
	for mark := 1; mark <= data.TemplateMarks; mark++ {
		ring := make([]stand.Point, 0, len(stand.AllStats))
		for _, stat := range stand.AllStats {
			ring = append(ring, stand.Vertex(stat, mark))
		}
		p.strokePolygonColor(screen, ring, contour, p.Scale)
	}
}

// fillPolygon draws a triangle fan around the chart center. The stat polygon
// is star-shaped around the center, so the fan covers it exactly.
func (p *Preview) fillPolygon(screen *ebiten.Image, points []stand.Point, c rgba) {
	if c.A == 0 {
		return
	}
	cx, cy := p.toScreen(stand.Point{X: stand.Center, Y: stand.Center})
	vertices := make([]ebiten.Vertex, 0, len(points)+1)
	vertices = append(vertices, ebiten.Vertex{
		DstX: cx, DstY: cy, SrcX: 0.5, SrcY: 0.5,
		ColorR: c.R, ColorG: c.G, ColorB: c.B, ColorA: c.A,
	})
	for _, pt := range points {
		x, y := p.toScreen(pt)
		vertices = append(vertices, ebiten.Vertex{
			DstX: x, DstY: y, SrcX: 0.5, SrcY: 0.5,
			ColorR: c.R, ColorG: c.G, ColorB: c.B, ColorA: c.A,
		})
	}
	indices := make([]uint16, 0, len(points)*3)
	for i := range points {
		next := (i+1)%len(points) + 1
		indices = append(indices, 0, uint16(i+1), uint16(next))
	}
	screen.DrawTriangles(vertices, indices, p.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (p *Preview) strokePolygon(screen *ebiten.Image, points []stand.Point, c rgba, width float32) {
	if c.A == 0 {
		return
	}
	p.strokePolygonColor(screen, points, c.Color(), width)
}

func (p *Preview) strokePolygonColor(screen *ebiten.Image, points []stand.Point, c color.Color, width float32) {
	for i, pt := range points {
		x0, y0 := p.toScreen(pt)
		x1, y1 := p.toScreen(points[(i+1)%len(points)])
		vector.StrokeLine(screen, x0, y0, x1, y1, width, c, true)
	}
}
