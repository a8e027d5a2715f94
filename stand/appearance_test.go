package stand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingObserver struct {
	n int
}

func (c *countingObserver) Notify() { c.n++ }

func TestValueNotifiesObserversInOrder(t *testing.T) {
	v := NewValue("red")
	var order []string
	v.AddObserver(ObserverFunc(func() { order = append(order, "first:"+v.Get()) }))
	v.AddObserver(ObserverFunc(func() { order = append(order, "second:"+v.Get()) }))
	v.AddObserver(nil)

	v.Set("blue")
	v.Set("blue")

	assert.Equal(t, []string{"first:blue", "second:blue", "first:blue", "second:blue"}, order)
}

func TestAppearanceObserveColorsSkipsOpacity(t *testing.T) {
	a := NewAppearance(Look{Contour: "#000", PolyFill: "red", PolyStroke: "black", PolyOpacity: "0.5"})
	colors := &countingObserver{}
	all := &countingObserver{}
	a.ObserveColors(colors)
	a.Observe(all)

	a.PolyOpacity.Set("0.8")
	assert.Equal(t, 0, colors.n)
	assert.Equal(t, 1, all.n)

	a.Contour.Set("#123456")
	a.PolyFill.Set("blue")
	a.PolyStroke.Set("white")
	assert.Equal(t, 3, colors.n)
	assert.Equal(t, 4, all.n)

	assert.Equal(t, Look{Contour: "#123456", PolyFill: "blue", PolyStroke: "white", PolyOpacity: "0.8"}, a.Look())
}

func TestStatsObserve(t *testing.T) {
	s := NewStats("0")
	obs := &countingObserver{}
	s.Observe(obs)
	for _, stat := range AllStats {
		s.Set(stat, "2")
	}
	assert.Equal(t, len(AllStats), obs.n)
	assert.Equal(t, "2", s.Value(Development).Get())
}
