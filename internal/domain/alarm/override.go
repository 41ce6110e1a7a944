package alarm

// Override is a property value that is either inherited from the parent tier
// or overridden locally. The zero value is inherited.
type Override[T any] struct {
	value T
	set   bool
}

// Overridden returns an override holding v.
func Overridden[T any](v T) Override[T] {
	return Override[T]{value: v, set: true}
}

// IsSet reports whether the property is overridden at this tier.
func (o Override[T]) IsSet() bool {
	return o.set
}

// Value returns the local value and whether it is set.
func (o Override[T]) Value() (T, bool) {
	return o.value, o.set
}

// Resolve returns the local value when set, otherwise the parent's value.
// The parent is only consulted when needed.
func (o Override[T]) Resolve(parent func() T) T {
	if o.set {
		return o.value
	}

	return parent()
}

// Set stores v as the local value.
func (o *Override[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Reset returns the property to inheriting from the parent tier.
func (o *Override[T]) Reset() {
	var zero T

	o.value = zero
	o.set = false
}

// Ptr returns a pointer to a copy of the local value, or nil when inherited.
func (o Override[T]) Ptr() *T {
	if !o.set {
		return nil
	}

	v := o.value

	return &v
}

// overrideFromPtr builds an override from a nil-able pointer.
func overrideFromPtr[T any](p *T) Override[T] {
	if p == nil {
		return Override[T]{}
	}

	return Overridden(*p)
}
