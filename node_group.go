// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// GroupBy materializes s into a map of key -> list of elements classified
// by keyFn, and emits (key, list) pairs in first-seen key order. s is
// iterated in full when GroupBy is called, not when the result is first
// iterated.
func GroupBy[T any, K comparable](s Sequence[T], keyFn function.KeyFunc[T, K]) Indexable[Pair[K, []T]] {
	groups := make(map[K][]T)
	var order []K
	s.Each(func(v T, _ int) bool {
		k := keyFn(v)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], v)
		return true
	})

	pairs := make([]Pair[K, []T], 0, len(order))
	for _, k := range order {
		pairs = append(pairs, Pair[K, []T]{Key: k, Value: groups[k]})
	}
	return NewSliceSequence(pairs)
}

// CountBy materializes s into a map of key -> count classified by keyFn,
// and emits (key, count) pairs, in first-seen key order. Like GroupBy, it
// iterates s in full when it is called.
func CountBy[T any, K comparable](s Sequence[T], keyFn function.KeyFunc[T, K]) Indexable[Pair[K, int]] {
	counts := make(map[K]int)
	var order []K
	s.Each(func(v T, _ int) bool {
		k := keyFn(v)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
		return true
	})

	pairs := make([]Pair[K, int], 0, len(order))
	for _, k := range order {
		pairs = append(pairs, Pair[K, int]{Key: k, Value: counts[k]})
	}
	return NewSliceSequence(pairs)
}
