// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lazyseq/lazy/function"
)

// ToArray drains s into a new slice, in iteration order.
func ToArray[T any](s Sequence[T]) []T {
	var out []T
	s.Each(func(v T, _ int) bool {
		out = append(out, v)
		return true
	})
	return out
}

// TryToArray is ToArray guarded against known-unbounded sources (Generate
// and Repeat called with no length/count): it returns ErrUnboundedTerminal
// instead of looping forever. Sequences not marked unbounded behave exactly
// as ToArray; running a non-short-circuiting terminal directly against an
// unbounded sequence remains undefined behavior per contract.
func TryToArray[T any](s Sequence[T]) ([]T, error) {
	if u, ok := any(s).(interface{ isUnbounded() bool }); ok && u.isUnbounded() {
		return nil, ErrUnboundedTerminal
	}
	return ToArray[T](s), nil
}

// ForEach invokes action for every element of s, in iteration order.
func ForEach[T any](s Sequence[T], action function.Consumer[T]) {
	s.Each(func(v T, _ int) bool {
		action(v)
		return true
	})
}

// Reduce folds s from the left using op, starting from seed.
func Reduce[T, A any](s Sequence[T], seed A, op func(acc A, v T) A) A {
	acc := seed
	s.Each(func(v T, _ int) bool {
		acc = op(acc, v)
		return true
	})
	return acc
}

// ReduceSeedless folds s from the left using op, with the first element as
// the seed and iteration starting at the second. It is undefined behavior,
// per contract, to call this on an empty sequence — it panics.
func ReduceSeedless[T any](s Sequence[T], op function.BinaryOperator[T]) T {
	var (
		acc     T
		started bool
	)
	s.Each(func(v T, _ int) bool {
		if !started {
			acc = v
			started = true
			return true
		}
		acc = op(acc, v)
		return true
	})
	if !started {
		panic("lazy: ReduceSeedless on an empty sequence")
	}
	return acc
}

// ReduceRight folds s from the right using op, starting from seed. It
// materializes s to do so.
func ReduceRight[T, A any](s Sequence[T], seed A, op func(acc A, v T) A) A {
	arr := ToArray[T](s)
	acc := seed
	for i := len(arr) - 1; i >= 0; i-- {
		acc = op(acc, arr[i])
	}
	return acc
}

// ReduceRightSeedless folds s from the right, seeding with the last element
// — equivalent to reversing s and running ReduceSeedless with a flipped op.
func ReduceRightSeedless[T any](s Sequence[T], op function.BinaryOperator[T]) T {
	arr := ToArray[T](s)
	if len(arr) == 0 {
		panic("lazy: ReduceRightSeedless on an empty sequence")
	}
	acc := arr[len(arr)-1]
	for i := len(arr) - 2; i >= 0; i-- {
		acc = op(arr[i], acc)
	}
	return acc
}

// Min returns the minimal element of s according to less, wrapped in an
// Optional that is empty if s has no elements.
func Min[T any](s Sequence[T], less Less[T]) *Optional[T] {
	var (
		best    T
		present bool
	)
	s.Each(func(v T, _ int) bool {
		if !present || less(v, best) {
			best = v
			present = true
		}
		return true
	})
	if !present {
		return OptionalEmpty[T]()
	}
	return OptionalOf(best)
}

// Max returns the maximal element of s according to less, wrapped in an
// Optional that is empty if s has no elements.
func Max[T any](s Sequence[T], less Less[T]) *Optional[T] {
	var (
		best    T
		present bool
	)
	s.Each(func(v T, _ int) bool {
		if !present || less(best, v) {
			best = v
			present = true
		}
		return true
	})
	if !present {
		return OptionalEmpty[T]()
	}
	return OptionalOf(best)
}

// Sum returns the sum of s's elements. The sum of an empty sequence is 0.
func Sum[T Number](s Sequence[T]) T {
	var total T
	s.Each(func(v T, _ int) bool {
		total += v
		return true
	})
	return total
}

// Join coerces each element of s to a string via fmt.Sprint and
// concatenates them, inserting sep only between elements.
func Join[T any](s Sequence[T], sep string) string {
	var b strings.Builder
	first := true
	s.Each(func(v T, _ int) bool {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, v)
		return true
	})
	return b.String()
}

// Find returns the first element of s matching predicate, short-circuiting
// as soon as it is found.
func Find[T any](s Sequence[T], predicate function.Predicate[T]) (T, bool) {
	var (
		found T
		ok    bool
	)
	s.Each(func(v T, _ int) bool {
		if predicate(v) {
			found = v
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Every reports whether predicate holds for every element of s. An empty
// sequence vacuously satisfies every predicate. Every short-circuits on the
// first element for which predicate is false.
func Every[T any](s Sequence[T], predicate function.Predicate[T]) bool {
	result := true
	s.Each(func(v T, _ int) bool {
		if !predicate(v) {
			result = false
			return false
		}
		return true
	})
	return result
}

// Some reports whether predicate holds for at least one element of s. An
// empty sequence never satisfies Some. Some short-circuits on the first
// matching element.
func Some[T any](s Sequence[T], predicate function.Predicate[T]) bool {
	result := false
	s.Each(func(v T, _ int) bool {
		if predicate(v) {
			result = true
			return false
		}
		return true
	})
	return result
}

// Any reports whether s has at least one element, short-circuiting after
// the first. It is Some with no predicate.
func Any[T any](s Sequence[T]) bool {
	found := false
	s.Each(func(_ T, _ int) bool {
		found = true
		return false
	})
	return found
}

// IsEmpty reports whether s has no elements.
func IsEmpty[T any](s Sequence[T]) bool {
	return !Any(s)
}

// IndexOf returns the index of the first element of s equal to v, or -1.
// IndexOf short-circuits as soon as a match is found.
func IndexOf[T comparable](s Sequence[T], v T) int {
	found := -1
	s.Each(func(e T, i int) bool {
		if e == v {
			found = i
			return false
		}
		return true
	})
	return found
}

// LastIndexOf returns the index of the last element of s equal to v, or -1.
// LastIndexOf requires a known length, so s must be Indexable.
func LastIndexOf[T comparable](s Indexable[T], v T) int {
	for i := s.Len() - 1; i >= 0; i-- {
		if s.Get(i) == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v occurs anywhere in s.
func Contains[T comparable](s Sequence[T], v T) bool {
	return IndexOf[T](s, v) >= 0
}

// SortedIndex returns the lowest index at which v could be inserted into s
// while keeping it sorted according to less. s must be Indexable and
// already sorted according to less; on unsorted input the result is
// unspecified but SortedIndex always terminates.
func SortedIndex[T any](s Indexable[T], v T, less Less[T]) int {
	n := s.Len()
	return sort.Search(n, func(i int) bool {
		return !less(s.Get(i), v)
	})
}
