// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

// Indexable is a Sequence with O(1) random access: Len is a finite,
// non-negative integer known without full iteration, and Get(i) is valid
// for 0 <= i < Len().
type Indexable[T any] interface {
	Sequence[T]

	// Get returns the element at index i. i must satisfy 0 <= i < Len().
	Get(i int) T

	// Len returns the number of elements, without iterating them.
	Len() int
}
