package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestPreviewColor(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want rgba
	}{
		{"hex", "#ff0000", rgba{1, 0, 0, 1}},
		{"named", "blue", rgba{0, 0, 1, 1}},
		{"padded", "  #00ff00 ", rgba{0, 1, 0, 1}},
		{"invalid_uses_fallback", "not-a-color", rgba{0, 0, 0, 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := previewColor(c.in, colornames.Black)
			assert.InDelta(t, c.want.R, got.R, 1e-3)
			assert.InDelta(t, c.want.G, got.G, 1e-3)
			assert.InDelta(t, c.want.B, got.B, 1e-3)
			assert.InDelta(t, c.want.A, got.A, 1e-3)
		})
	}
}

func TestPreviewOpacity(t *testing.T) {
	cases := []struct {
		in   string
		want float32
	}{
		{"0.5", 0.5},
		{" 1 ", 1},
		{"2", 1},
		{"-1", 0},
		{"lots", 1},
		{"", 1},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.InDelta(t, c.want, previewOpacity(c.in), 1e-6)
		})
	}
}

func TestRGBARoundTrip(t *testing.T) {
	c := fromColor(colornames.Orange)
	assert.Equal(t, color.NRGBA{R: 255, G: 165, B: 0, A: 255}, c.Color())
}
