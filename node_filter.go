// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// newFiltered dispatches to a cache-backed indexed variant when parent is
// Indexable, or a pure streaming variant otherwise — mirroring the
// indexed/stream split newTaken and newDropped already make. A streaming
// filter must never report itself Indexable: Take/Initial/Reverse/
// LastIndexOf all branch on an Indexable type assertion and would drive
// Get/Len straight through to completion, which hangs forever over an
// unbounded parent.
func newFiltered[T any](parent Sequence[T], predicate function.Predicate[T]) Sequence[T] {
	if idx, ok := parent.(Indexable[T]); ok {
		n := &filteredIndexedNode[T]{parent: idx, predicate: predicate}
		n.self = n
		return n
	}
	n := &filteredStreamNode[T]{parent: parent, predicate: predicate}
	n.self = n
	return n
}

// filteredIndexedNode is the distilled spec's Indexed-Filter: a cache
// materialized from an Indexable parent on first Get/Len, giving O(1)
// random access thereafter.
type filteredIndexedNode[T any] struct {
	base[T]
	parent    Indexable[T]
	predicate function.Predicate[T]
	cache     cache[T]
}

func (n *filteredIndexedNode[T]) Each(visitor function.Visitor[T]) {
	length := n.parent.Len()
	i := 0
	for p := 0; p < length; p++ {
		v := n.parent.Get(p)
		if !n.predicate(v) {
			continue
		}
		if !visitor(v, i) {
			return
		}
		i++
	}
}

func (n *filteredIndexedNode[T]) materialize() []T {
	return n.cache.materialize(func() []T {
		var out []T
		length := n.parent.Len()
		for p := 0; p < length; p++ {
			if v := n.parent.Get(p); n.predicate(v) {
				out = append(out, v)
			}
		}
		return out
	})
}

func (n *filteredIndexedNode[T]) Get(i int) T { return n.materialize()[i] }
func (n *filteredIndexedNode[T]) Len() int    { return len(n.materialize()) }

// filteredStreamNode is the distilled spec's Filtered (stream) node: it
// deliberately has no Get/Len, since its parent (non-indexable, possibly
// unbounded) has no length to report without being drained.
type filteredStreamNode[T any] struct {
	base[T]
	parent    Sequence[T]
	predicate function.Predicate[T]
}

func (n *filteredStreamNode[T]) Each(visitor function.Visitor[T]) {
	i := 0
	n.parent.Each(func(v T, _ int) bool {
		if !n.predicate(v) {
			return true
		}
		keep := visitor(v, i)
		i++
		return keep
	})
}
