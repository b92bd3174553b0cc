// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// Map returns a sequence consisting of the results of applying mapper to
// the elements of s, exactly as gostream's Map is a free function
// alongside Stream[T]'s same-type methods — Go has no generic methods, so
// every type-changing operator lives at package level.
func Map[T, R any](s Sequence[T], mapper function.Mapper[T, R]) Sequence[R] {
	if idx, ok := s.(Indexable[T]); ok {
		return newMappedIndexed[T, R](idx, mapper)
	}
	return newMapped[T, R](s, mapper)
}

// mappedNode is the streaming (non-indexable) Mapped node.
type mappedNode[T, R any] struct {
	base[R]
	parent Sequence[T]
	mapper function.Mapper[T, R]
}

func newMapped[T, R any](parent Sequence[T], mapper function.Mapper[T, R]) *mappedNode[T, R] {
	n := &mappedNode[T, R]{parent: parent, mapper: mapper}
	n.self = n
	return n
}

func (n *mappedNode[T, R]) Each(visitor function.Visitor[R]) {
	n.parent.Each(func(v T, i int) bool {
		return visitor(n.mapper(v, i), i)
	})
}

// mappedIndexedNode is Indexed-Map: Get(i) = mapper(parent.Get(i), i),
// length inherited, computed on demand with no cache.
type mappedIndexedNode[T, R any] struct {
	base[R]
	parent Indexable[T]
	mapper function.Mapper[T, R]
}

func newMappedIndexed[T, R any](parent Indexable[T], mapper function.Mapper[T, R]) *mappedIndexedNode[T, R] {
	n := &mappedIndexedNode[T, R]{parent: parent, mapper: mapper}
	n.self = n
	return n
}

func (n *mappedIndexedNode[T, R]) Each(visitor function.Visitor[R]) {
	length := n.parent.Len()
	for i := 0; i < length; i++ {
		if !visitor(n.mapper(n.parent.Get(i), i), i) {
			return
		}
	}
}

func (n *mappedIndexedNode[T, R]) Get(i int) R { return n.mapper(n.parent.Get(i), i) }
func (n *mappedIndexedNode[T, R]) Len() int    { return n.parent.Len() }
