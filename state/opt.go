package state

// Opt holds an optional value; the zero value is absent
// Value semantics keep GameState copies free of shared pointers
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a present optional
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// None returns an absent optional
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the value, or def when absent
func (o Opt[T]) Or(def T) T {
	if !o.set {
		return def
	}
	return o.value
}
