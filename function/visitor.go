// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package function

// Visitor is invoked once per element of a Sequence. Returning false is the
// stop sentinel: the sequence must cease invoking the visitor and return
// promptly, and the signal must propagate to every parent in the pipeline.
type Visitor[T any] func(value T, index int) bool

// KeyFunc extracts a comparable classification key from an element, used by
// GroupBy and CountBy.
type KeyFunc[T any, K comparable] func(t T) K

// Comparator orders two values of the same type, following the convention
// of the standard library's cmp.Compare: negative if a < b, zero if equal,
// positive if a > b.
type Comparator[T any] func(a, b T) int

// Mapper transforms an element and its index into a new value, as used by
// Map, Pluck, and Invoke.
type Mapper[T, R any] func(t T, index int) R
