// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// uniqueSmallThreshold and uniqueLargeThreshold pick the uniqueness
// strategy at construction time, based on the indexable source's size at
// that moment — never revisited even if the source could change.
const (
	uniqueSmallThreshold = 40
	uniqueLargeThreshold = 800
)

// Uniq returns a sequence keeping the first occurrence of each distinct
// element (by ==), preserving first-occurrence order. Over an Indexable
// source, the dedup strategy is chosen once by size: a plain rescan for
// small sources, a dedicated array cache for medium ones, and a set cache
// for large ones — three observably identical implementations optimized
// for different regimes. Over any other source the set-cache strategy is
// used directly, since the size isn't known without consuming it.
func Uniq[T comparable](s Sequence[T]) Sequence[T] {
	if idx, ok := s.(Indexable[T]); ok {
		n := idx.Len()
		switch {
		case n < uniqueSmallThreshold:
			node := &uniqueRescanNode[T]{parent: idx}
			node.self = node
			return node
		case n < uniqueLargeThreshold:
			node := &uniqueArrayCacheNode[T]{parent: idx}
			node.self = node
			return node
		}
	}
	node := &uniqueSetCacheNode[T]{parent: s}
	node.self = node
	return node
}

// uniqueRescanNode: n < 40. No auxiliary structure — each candidate is
// checked against the preceding prefix of the source itself.
type uniqueRescanNode[T comparable] struct {
	base[T]
	parent Indexable[T]
}

func (n *uniqueRescanNode[T]) Each(visitor function.Visitor[T]) {
	length := n.parent.Len()
	out := 0
	for i := 0; i < length; i++ {
		v := n.parent.Get(i)
		dup := false
		for j := 0; j < i; j++ {
			if n.parent.Get(j) == v {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		if !visitor(v, out) {
			return
		}
		out++
	}
}

// uniqueArrayCacheNode: 40 <= n < 800. A dedicated slice of distinct values
// emitted so far, scanned linearly on each candidate.
type uniqueArrayCacheNode[T comparable] struct {
	base[T]
	parent Indexable[T]
}

func (n *uniqueArrayCacheNode[T]) Each(visitor function.Visitor[T]) {
	length := n.parent.Len()
	seen := make([]T, 0, length)
	out := 0
	for i := 0; i < length; i++ {
		v := n.parent.Get(i)
		dup := false
		for _, s := range seen {
			if s == v {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen = append(seen, v)
		if !visitor(v, out) {
			return
		}
		out++
	}
}

// uniqueSetCacheNode: n >= 800, or size unknown. A hash set of values
// emitted so far, for O(1) membership checks.
type uniqueSetCacheNode[T comparable] struct {
	base[T]
	parent Sequence[T]
}

func (n *uniqueSetCacheNode[T]) Each(visitor function.Visitor[T]) {
	seen := make(map[T]struct{})
	out := 0
	n.parent.Each(func(v T, _ int) bool {
		if _, dup := seen[v]; dup {
			return true
		}
		seen[v] = struct{}{}
		keep := visitor(v, out)
		out++
		return keep
	})
}
