package stand

// Look is a plain snapshot of the appearance fields, read at export time.
type Look struct {
	Contour     string `yaml:"contour"`
	PolyFill    string `yaml:"poly_fill"`
	PolyStroke  string `yaml:"poly_stroke"`
	PolyOpacity string `yaml:"poly_opacity"`
}

// Appearance holds the editable colors and opacity of the stand chart.
// Values are kept verbatim; nothing here checks that a color is valid.
type Appearance struct {
	Contour     *Value[string]
	PolyFill    *Value[string]
	PolyStroke  *Value[string]
	PolyOpacity *Value[string]
}

func NewAppearance(initial Look) *Appearance {
	return &Appearance{
		Contour:     NewValue(initial.Contour),
		PolyFill:    NewValue(initial.PolyFill),
		PolyStroke:  NewValue(initial.PolyStroke),
		PolyOpacity: NewValue(initial.PolyOpacity),
	}
}

func (a *Appearance) Look() Look {
	return Look{
		Contour:     a.Contour.Get(),
		PolyFill:    a.PolyFill.Get(),
		PolyStroke:  a.PolyStroke.Get(),
		PolyOpacity: a.PolyOpacity.Get(),
	}
}

// ObserveColors registers o on the three color fields only.
func (a *Appearance) ObserveColors(o Observer) {
	a.Contour.AddObserver(o)
	a.PolyFill.AddObserver(o)
	a.PolyStroke.AddObserver(o)
}

// Observe registers o on every appearance field, opacity included.
func (a *Appearance) Observe(o Observer) {
	a.ObserveColors(o)
	a.PolyOpacity.AddObserver(o)
}
