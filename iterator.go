// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/internal/pullbridge"

// Iterator is the pull interface used for asynchronous and stream
// consumption. A fresh Iterator is positioned before the first element;
// Advance must be called once before the first Current.
type Iterator[T any] interface {
	// Advance returns true if a new element is now current, false when
	// exhausted.
	Advance() bool

	// Current returns the value at the cursor.
	Current() T
}

// indexIterator is the default iterator over an Indexable sequence: it
// holds an index and checks it against Len on each Advance.
type indexIterator[T any] struct {
	src Indexable[T]
	i   int
	n   int
}

func newIndexIterator[T any](src Indexable[T]) *indexIterator[T] {
	return &indexIterator[T]{src: src, i: -1, n: src.Len()}
}

func (it *indexIterator[T]) Advance() bool {
	it.i++
	return it.i < it.n
}

func (it *indexIterator[T]) Current() T {
	return it.src.Get(it.i)
}

// filteringIterator wraps another iterator, skipping values the predicate
// rejects.
type filteringIterator[T any] struct {
	inner     Iterator[T]
	predicate func(T) bool
}

func newFilteringIterator[T any](inner Iterator[T], predicate func(T) bool) *filteringIterator[T] {
	return &filteringIterator[T]{inner: inner, predicate: predicate}
}

func (it *filteringIterator[T]) Advance() bool {
	for it.inner.Advance() {
		if it.predicate(it.inner.Current()) {
			return true
		}
	}
	return false
}

func (it *filteringIterator[T]) Current() T {
	return it.inner.Current()
}

// bridgeIterator adapts a push-style Each into a pull Iterator via
// internal/pullbridge, for sequences with no cheaper index-based cursor.
type bridgeIterator[T any] struct {
	b *pullbridge.Bridge[T]
}

func newBridgeIterator[T any](s Sequence[T]) *bridgeIterator[T] {
	b := pullbridge.New(func(yield func(T) bool) {
		s.Each(func(v T, _ int) bool {
			return yield(v)
		})
	})
	return &bridgeIterator[T]{b: b}
}

func (it *bridgeIterator[T]) Advance() bool { return it.b.Advance() }
func (it *bridgeIterator[T]) Current() T    { return it.b.Current() }
