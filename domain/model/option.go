package model

// Option holds a field value that may be absent. A column missing from a
// dataset header decodes to None, never to a zero sentinel, so callers
// can distinguish "no value" from a literal zero.
type Option[T any] struct {
	value T
	valid bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, valid: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.valid
}

// Value returns the wrapped value and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.valid
}

// Or returns the wrapped value, or def when absent.
func (o Option[T]) Or(def T) T {
	if o.valid {
		return o.value
	}
	return def
}
