package stand

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonAllZeroIsCenter(t *testing.T) {
	points := Polygon(Magnitudes{})
	require.Len(t, points, 6)
	for i, p := range points {
		assert.InDelta(t, Center, p.X, 1e-9, "vertex %d x", i)
		assert.InDelta(t, Center, p.Y, 1e-9, "vertex %d y", i)
		assert.Equal(t, "64,64", p.String())
	}
}

func TestVertexPerAxis(t *testing.T) {
	cases := []struct {
		name string
		stat Stat
		m    int
		want string
	}{
		{"power_up", Power, 5, "64,29"},
		{"power_one", Power, 1, "64,57"},
		{"persistence_down", Persistence, 2, "64,78"},
		{"speed_upper_right", Speed, 2, "76.124356,57"},
		{"range_lower_right", Range, 2, "76.124356,71"},
		{"precision_lower_left", Precision, 2, "51.875644,71"},
		{"development_upper_left", Development, 2, "51.875644,57"},
		{"negative_flips", Power, -1, "64,71"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Vertex(c.stat, c.m).String())
		})
	}
}

func TestPowerOnlyMagnitude(t *testing.T) {
	for m := 0; m <= 6; m++ {
		var mags Magnitudes
		mags[Power] = m
		points := Polygon(mags)
		assert.InDelta(t, 64, points[0].X, 1e-9)
		assert.InDelta(t, 64-7*float64(m), points[0].Y, 1e-9)
		for _, p := range points[1:] {
			assert.Equal(t, "64,64", p.String())
		}
	}
}

func TestPolygonOrderFollowsStatTable(t *testing.T) {
	mags := Magnitudes{1, 2, 3, 4, 5, 6}
	points := Polygon(mags)
	for i, stat := range AllStats {
		assert.Equal(t, Vertex(stat, mags[stat]), points[i], stat.String())
	}
	assert.Equal(t,
		"64,57 76.124356,57 82.186533,74.5 64,92 33.689111,81.5 27.626933,43",
		FormatPoints(points))
}

func TestParseMagnitude(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 4 ", 4, false},
		{"+2", 2, false},
		{"-1", -1, false},
		{"", 0, true},
		{"A", 0, true},
		{"2.5", 0, true},
	}
	for _, c := range cases {
		got, err := ParseMagnitude(c.in)
		if c.wantErr {
			require.Error(t, err, c.in)
			assert.True(t, errors.Is(err, ErrInvalidMagnitude))
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got)
	}
}

func TestStatsMagnitudesNamesBadStat(t *testing.T) {
	s := NewStats("1")
	s.Set(Precision, "lots")

	_, err := s.Magnitudes()
	require.ErrorIs(t, err, ErrInvalidMagnitude)
	assert.Contains(t, err.Error(), "precision")

	_, err = s.Points()
	require.ErrorIs(t, err, ErrInvalidMagnitude)
}

func TestParseStat(t *testing.T) {
	for _, stat := range AllStats {
		got, err := ParseStat(stat.String())
		require.NoError(t, err)
		assert.Equal(t, stat, got)
	}
	_, err := ParseStat("charisma")
	assert.ErrorIs(t, err, ErrUnknownStat)
	assert.Equal(t, "Stat(42)", Stat(42).String())
}

func TestInvalidStatDoesNotPanic(t *testing.T) {
	cases := []Stat{-1, statCount, 42}
	for _, stat := range cases {
		t.Run(stat.String(), func(t *testing.T) {
			assert.False(t, stat.Valid())
			assert.True(t, math.IsNaN(stat.Angle()))

			s := NewStats("1")
			assert.Nil(t, s.Value(stat))
			assert.Equal(t, "", s.Get(stat))
			s.Set(stat, "9")
			m, err := s.Magnitudes()
			require.NoError(t, err)
			assert.Equal(t, Magnitudes{1, 1, 1, 1, 1, 1}, m)
		})
	}
	for _, stat := range AllStats {
		assert.True(t, stat.Valid())
	}
}
