package stand

// Observer is notified synchronously every time an observed value is set.
type Observer interface {
	Notify()
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func()

func (f ObserverFunc) Notify() { f() }

// Value is a single editable form field. Observers are not owned by the
// value; they are only called back when Set runs.
type Value[T any] struct {
	v         T
	observers []Observer
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

func (v *Value[T]) Get() T { return v.v }

// Set stores x and notifies every observer in registration order. Observers
// are called even when x equals the current value.
func (v *Value[T]) Set(x T) {
	v.v = x
	for _, o := range v.observers {
		o.Notify()
	}
}

func (v *Value[T]) AddObserver(o Observer) {
	if o == nil {
		return
	}
	v.observers = append(v.observers, o)
}
