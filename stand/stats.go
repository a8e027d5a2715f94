package stand

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrUnknownStat      = errors.New("stand: unknown stat")
	ErrInvalidMagnitude = errors.New("stand: invalid magnitude")
)

// Stat identifies one of the six axes of the stand chart.
type Stat int

const (
	Power Stat = iota
	Speed
	Range
	Persistence
	Precision
	Development

	statCount
)

const (
	// Center is the x and y coordinate of the chart origin in template units.
	Center = 64.0
	// DistanceBetweenMarks is the length of one magnitude step along an axis.
	DistanceBetweenMarks = 7.0
)

var statNames = [statCount]string{
	Power:       "power",
	Speed:       "speed",
	Range:       "range",
	Persistence: "persistence",
	Precision:   "precision",
	Development: "development",
}

// Axis angles in degrees, counter-clockwise from the positive x axis.
var statAngles = [statCount]float64{
	Power:       90,
	Speed:       30,
	Range:       330,
	Persistence: 270,
	Precision:   210,
	Development: 150,
}

// AllStats lists the stats in polygon vertex order. The order follows the
// angle table, not the angles themselves.
var AllStats = []Stat{Power, Speed, Range, Persistence, Precision, Development}

// Valid reports whether s is one of AllStats.
func (s Stat) Valid() bool { return s >= 0 && s < statCount }

func (s Stat) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// Angle returns the axis angle in radians, or NaN for an invalid stat.
func (s Stat) Angle() float64 {
	if !s.Valid() {
		return math.NaN()
	}
	return statAngles[s] * math.Pi / 180
}

func ParseStat(name string) (Stat, error) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStat, name)
}

// Magnitudes holds one integer magnitude per stat, indexed by Stat.
type Magnitudes [statCount]int

// ParseMagnitude coerces the text of a stat field to an integer.
func ParseMagnitude(text string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMagnitude, text)
	}
	return m, nil
}

// Point is a vertex in template coordinates. Y grows downwards.
type Point struct {
	X, Y float64
}

// String formats the point as "x,y" for an SVG points attribute.
func (p Point) String() string {
	return formatCoord(p.X) + "," + formatCoord(p.Y)
}

func formatCoord(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Vertex returns the chart point for magnitude m on the axis of stat.
func Vertex(stat Stat, m int) Point {
	angle := stat.Angle()
	r := float64(m) * DistanceBetweenMarks
	return Point{
		X: Center + r*math.Cos(angle),
		Y: Center - r*math.Sin(angle),
	}
}

// Polygon returns the six vertices in AllStats order.
func Polygon(m Magnitudes) []Point {
	points := make([]Point, 0, len(AllStats))
	for _, stat := range AllStats {
		points = append(points, Vertex(stat, m[stat]))
	}
	return points
}

// FormatPoints joins points the way the SVG points attribute expects.
func FormatPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// Stats holds the six textual stat fields of the form.
type Stats struct {
	values [statCount]*Value[string]
}

// NewStats creates the six stat fields, all set to initial.
func NewStats(initial string) *Stats {
	s := &Stats{}
	for i := range s.values {
		s.values[i] = NewValue(initial)
	}
	return s
}

// Value returns the field of stat, or nil for an invalid stat.
func (s *Stats) Value(stat Stat) *Value[string] {
	if !stat.Valid() {
		return nil
	}
	return s.values[stat]
}

// Get returns "" for an invalid stat.
func (s *Stats) Get(stat Stat) string {
	if !stat.Valid() {
		return ""
	}
	return s.values[stat].Get()
}

// Set ignores an invalid stat.
func (s *Stats) Set(stat Stat, text string) {
	if !stat.Valid() {
		return
	}
	s.values[stat].Set(text)
}

// Observe registers o on all six fields.
func (s *Stats) Observe(o Observer) {
	for _, v := range s.values {
		v.AddObserver(o)
	}
}

// Magnitudes coerces every field. The first field that is not an integer
// aborts the conversion.
func (s *Stats) Magnitudes() (Magnitudes, error) {
	var m Magnitudes
	for _, stat := range AllStats {
		v, err := ParseMagnitude(s.Get(stat))
		if err != nil {
			return Magnitudes{}, fmt.Errorf("%s: %w", stat, err)
		}
		m[stat] = v
	}
	return m, nil
}

func (s *Stats) Points() ([]Point, error) {
	m, err := s.Magnitudes()
	if err != nil {
		return nil, err
	}
	return Polygon(m), nil
}
