// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// OptionalMap returns the result of applying the given mapping function to
// the value if present, otherwise returns an empty Optional.
func OptionalMap[T, U any](
	o *Optional[T],
	mapper function.Function[T, U],
) *Optional[U] {
	if !o.IsPresent() {
		return &Optional[U]{} // empty
	}
	return &Optional[U]{
		value:   mapper(o.value),
		present: true,
	}
}

// OptionalFlatMap returns the result of applying the given Optional-bearing
// mapping function to the value if present, otherwise returns an empty
// Optional.
func OptionalFlatMap[T, U any](
	o *Optional[T],
	mapper function.Function[T, *Optional[U]],
) *Optional[U] {
	if !o.IsPresent() {
		return &Optional[U]{} // empty
	}
	r := mapper(o.value)
	if r == nil {
		panic("lazy: mapper returned nil")
	}
	return r
}
