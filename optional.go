// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"fmt"

	"github.com/lazyseq/lazy/function"
)

// Optional is a container object which may or may not contain a value. If
// a value is present, IsPresent returns true; otherwise the object is
// empty and IsPresent returns false. It is how the terminal operations Min
// and Max report an empty input, instead of a zero value the caller could
// mistake for data (Find reports the same case through its bool result). The zero value for Optional is an empty
// object ready to use.
type Optional[T any] struct {
	value   T
	present bool
}

// OptionalOf returns an Optional describing the given value.
func OptionalOf[T any](value T) *Optional[T] {
	return &Optional[T]{value: value, present: true}
}

// OptionalEmpty returns an empty Optional instance.
func OptionalEmpty[T any]() *Optional[T] {
	return &Optional[T]{}
}

// Get returns the value if present. Otherwise, Get panics.
func (o *Optional[T]) Get() T {
	if o.present {
		return o.value
	}
	panic("lazy: value is not present")
}

// IsPresent returns true if a value is present.
func (o *Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty returns true if no value is present.
func (o *Optional[T]) IsEmpty() bool {
	return !o.present
}

// IfPresent performs action with the value if present, otherwise does
// nothing.
func (o *Optional[T]) IfPresent(action function.Consumer[T]) {
	if o.present {
		action(o.value)
	}
}

// IfPresentOrElse performs action with the value if present, otherwise
// performs emptyAction.
func (o *Optional[T]) IfPresentOrElse(action function.Consumer[T], emptyAction func()) {
	if o.present {
		action(o.value)
	} else {
		emptyAction()
	}
}

// Filter returns o if its value is present and matches predicate,
// otherwise an empty Optional.
func (o *Optional[T]) Filter(predicate function.Predicate[T]) *Optional[T] {
	if !o.present {
		return o
	}
	if predicate(o.value) {
		return o
	}
	return &Optional[T]{}
}

// Or returns o if its value is present, otherwise the Optional produced by
// supplier.
func (o *Optional[T]) Or(supplier function.Supplier[*Optional[T]]) *Optional[T] {
	if o.present {
		return o
	}
	r := supplier()
	if r == nil {
		panic("lazy: Or supplier returned nil")
	}
	return r
}

// Seq returns a Sequence containing only the value if present, otherwise
// an empty sequence.
func (o *Optional[T]) Seq() Sequence[T] {
	if o.present {
		return NewSliceSequence([]T{o.value})
	}
	return NewSliceSequence[T](nil)
}

// OrElse returns the value if present, otherwise other.
func (o *Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the value if present, otherwise the result of
// supplier.
func (o *Optional[T]) OrElseGet(supplier function.Supplier[T]) T {
	if o.present {
		return o.value
	}
	return supplier()
}

// OrElsePanic returns the value if present, otherwise panics.
func (o *Optional[T]) OrElsePanic() T {
	if o.present {
		return o.value
	}
	panic("lazy: no value is present")
}

// String returns a debugging representation of o. Format is unspecified
// and may change between versions.
func (o *Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Optional[%v]", o.value)
	}
	return "Optional.empty"
}
