// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

func newTaken[T any](parent Sequence[T], n int) Sequence[T] {
	if n < 0 {
		n = 0
	}
	if idx, ok := parent.(Indexable[T]); ok {
		node := &takeIndexedNode[T]{parent: idx, n: n}
		node.self = node
		return node
	}
	node := &takeCacheNode[T]{parent: parent, n: n}
	node.self = node
	return node
}

// takeIndexedNode is Indexed-Take: length = min(n, parent.Len()), Get
// inherited unchanged — no cache needed.
type takeIndexedNode[T any] struct {
	base[T]
	parent Indexable[T]
	n      int
}

func (t *takeIndexedNode[T]) Len() int {
	return min(t.n, t.parent.Len())
}

func (t *takeIndexedNode[T]) Get(i int) T { return t.parent.Get(i) }

func (t *takeIndexedNode[T]) Each(visitor function.Visitor[T]) {
	length := t.Len()
	for i := 0; i < length; i++ {
		if !visitor(t.parent.Get(i), i) {
			return
		}
	}
}

// takeCacheNode caches at most n elements of a non-indexable (possibly
// unbounded) parent — the only cache-based node that is safe to run to
// completion against an infinite source, per invariant I4.
type takeCacheNode[T any] struct {
	base[T]
	parent Sequence[T]
	n      int
	cache  cache[T]
}

func (t *takeCacheNode[T]) materialize() []T {
	return t.cache.materialize(func() []T {
		if t.n <= 0 {
			return nil
		}
		out := make([]T, 0, t.n)
		t.parent.Each(func(v T, _ int) bool {
			out = append(out, v)
			return len(out) < t.n
		})
		return out
	})
}

func (t *takeCacheNode[T]) Each(visitor function.Visitor[T]) {
	for i, v := range t.materialize() {
		if !visitor(v, i) {
			return
		}
	}
}

func (t *takeCacheNode[T]) Get(i int) T { return t.materialize()[i] }
func (t *takeCacheNode[T]) Len() int    { return len(t.materialize()) }

func newDropped[T any](parent Sequence[T], n int) Sequence[T] {
	if n < 0 {
		n = 0
	}
	if idx, ok := parent.(Indexable[T]); ok {
		node := &dropIndexedNode[T]{parent: idx, n: n}
		node.self = node
		return node
	}
	node := &dropStreamNode[T]{parent: parent, n: n}
	node.self = node
	return node
}

// dropIndexedNode is Indexed-Drop: length = max(0, parent.Len()-n),
// Get(i) = parent.Get(n+i).
type dropIndexedNode[T any] struct {
	base[T]
	parent Indexable[T]
	n      int
}

func (d *dropIndexedNode[T]) Len() int {
	return max(d.parent.Len()-d.n, 0)
}

func (d *dropIndexedNode[T]) Get(i int) T { return d.parent.Get(d.n + i) }

func (d *dropIndexedNode[T]) Each(visitor function.Visitor[T]) {
	length := d.Len()
	for i := 0; i < length; i++ {
		if !visitor(d.parent.Get(d.n+i), i) {
			return
		}
	}
}

// dropStreamNode skips the first n elements of a non-indexable parent by
// counting as it streams; it deliberately offers no Get/Len, since the
// remainder of an unbounded parent has no finite length to report.
type dropStreamNode[T any] struct {
	base[T]
	parent Sequence[T]
	n      int
}

func (d *dropStreamNode[T]) Each(visitor function.Visitor[T]) {
	seen := 0
	i := 0
	d.parent.Each(func(v T, _ int) bool {
		if seen < d.n {
			seen++
			return true
		}
		keep := visitor(v, i)
		i++
		return keep
	})
}
