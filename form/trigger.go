package form

// SaveTrigger gates the save action. It starts disabled and enables itself
// on the first notification from an observed color; it never disables again.
type SaveTrigger struct {
	enabled   bool
	onEnabled []func()
}

func (s *SaveTrigger) Notify() {
	if s.enabled {
		return
	}
	s.enabled = true
	for _, f := range s.onEnabled {
		f()
	}
}

func (s *SaveTrigger) Enabled() bool { return s.enabled }

// OnEnabled registers f to run once when the trigger enables. If it already
// is, f runs immediately.
func (s *SaveTrigger) OnEnabled(f func()) {
	if f == nil {
		return
	}
	if s.enabled {
		f()
		return
	}
	s.onEnabled = append(s.onEnabled, f)
}
