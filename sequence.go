// Copyright © 2026 Yoshiki Shibata. All rights reserved.

// Package lazy is a lazy sequence library: a uniform, composable interface
// over "zero or more consecutive elements" drawn from slices, maps, strings,
// generator functions, channels, or streamed HTTP bodies. Pipelines are
// assembled without touching source elements; work happens only when a
// terminal operation is invoked, and only as much of it as the terminal
// needs.
package lazy

import "github.com/lazyseq/lazy/function"

// Sequence is the abstract protocol every source adapter and operator node
// implements. It carries every operator whose result has the same element
// type as its receiver; operators that change the element type (Map,
// GroupBy, Zip, ...) or narrow the type constraint (Uniq, Without, ...) are
// package-level generic functions instead, since Go methods cannot
// introduce their own type parameters.
type Sequence[T any] interface {
	// Each invokes visitor(element, index) in sequence order, stopping
	// immediately if visitor returns false (the stop sentinel). Each has no
	// return value. Calling Each twice on the same sequence, over an
	// unchanged source, visits the same elements in the same order.
	Each(visitor function.Visitor[T])

	// Filter returns a sequence of the elements for which predicate is true.
	Filter(predicate function.Predicate[T]) Sequence[T]

	// Reject returns a sequence of the elements for which predicate is
	// false — Filter with a negated predicate.
	Reject(predicate function.Predicate[T]) Sequence[T]

	// Reverse returns a sequence with elements in reverse order.
	Reverse() Sequence[T]

	// Concat returns a sequence that emits this sequence's elements
	// followed by each argument's elements, in order.
	Concat(others ...Sequence[T]) Sequence[T]

	// Take returns a sequence limited to the first n elements. There is no
	// separate First alias.
	Take(n int) Sequence[T]

	// Drop returns a sequence that skips the first n elements. There is no
	// separate Rest alias.
	Drop(n int) Sequence[T]

	// Initial returns all but the last n elements. It needs a known length:
	// a receiver that is not Indexable is materialized first.
	Initial(n int) Sequence[T]

	// Last returns the last n elements.
	Last(n int) Sequence[T]

	// SortBy returns a sequence materialized and totally ordered by cmp,
	// following the convention: negative if a < b, zero if equal, positive
	// if a > b. The sort is not guaranteed stable.
	SortBy(cmp function.Comparator[T]) Sequence[T]

	// Shuffle returns a sequence materialized into a uniformly random
	// permutation (Fisher-Yates).
	Shuffle() Sequence[T]

	// GetIterator returns a pull-style Iterator over this sequence's
	// elements, used for asynchronous and stream consumption.
	GetIterator() Iterator[T]
}

// Pair is the element type produced by keyed iteration helpers (GroupBy,
// CountBy, and the toArray/pairs form of a Keyed: Keyed.Pairs and Keyed.Seq).
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
