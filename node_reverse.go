// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

func newReversed[T any](parent Sequence[T]) Sequence[T] {
	if idx, ok := parent.(Indexable[T]); ok {
		n := &reversedIndexedNode[T]{parent: idx}
		n.self = n
		return n
	}
	n := &reversedCacheNode[T]{parent: parent}
	n.self = n
	return n
}

// reversedIndexedNode computes Get(i) = parent.Get(Len-1-i) on demand: no
// cache needed when the parent already has O(1) random access.
type reversedIndexedNode[T any] struct {
	base[T]
	parent Indexable[T]
}

func (n *reversedIndexedNode[T]) Each(visitor function.Visitor[T]) {
	length := n.parent.Len()
	for i := 0; i < length; i++ {
		if !visitor(n.parent.Get(length-1-i), i) {
			return
		}
	}
}

func (n *reversedIndexedNode[T]) Get(i int) T { return n.parent.Get(n.parent.Len() - 1 - i) }
func (n *reversedIndexedNode[T]) Len() int    { return n.parent.Len() }

// reversedCacheNode materializes a non-indexable parent into a slice on
// first access, since reversing requires the full prefix up front.
type reversedCacheNode[T any] struct {
	base[T]
	parent Sequence[T]
	cache  cache[T]
}

func (n *reversedCacheNode[T]) materialize() []T {
	return n.cache.materialize(func() []T {
		fwd := ToArray[T](n.parent)
		out := make([]T, len(fwd))
		for i, v := range fwd {
			out[len(fwd)-1-i] = v
		}
		return out
	})
}

func (n *reversedCacheNode[T]) Each(visitor function.Visitor[T]) {
	for i, v := range n.materialize() {
		if !visitor(v, i) {
			return
		}
	}
}

func (n *reversedCacheNode[T]) Get(i int) T { return n.materialize()[i] }
func (n *reversedCacheNode[T]) Len() int    { return len(n.materialize()) }
