// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// base implements every same-type chaining operator of Sequence in terms of
// self, which every concrete node and source adapter sets to itself right
// after construction. This is the template-method idiom standing in for the
// inheritance gostream gets from embedding one generic stream struct: each
// node only has to implement Each (and, where it earns the capability,
// Get/Len), and picks up the rest of the protocol for free.
type base[T any] struct {
	self Sequence[T]
}

func (b *base[T]) Filter(predicate function.Predicate[T]) Sequence[T] {
	return newFiltered(b.self, predicate)
}

func (b *base[T]) Reject(predicate function.Predicate[T]) Sequence[T] {
	return newFiltered(b.self, func(t T) bool { return !predicate(t) })
}

func (b *base[T]) Reverse() Sequence[T] {
	return newReversed(b.self)
}

func (b *base[T]) Concat(others ...Sequence[T]) Sequence[T] {
	all := make([]Sequence[T], 0, len(others)+1)
	all = append(all, b.self)
	all = append(all, others...)
	return newConcatenated(all)
}

func (b *base[T]) Take(n int) Sequence[T] {
	return newTaken(b.self, n)
}

func (b *base[T]) Drop(n int) Sequence[T] {
	return newDropped(b.self, n)
}

// Initial returns all but the last n elements. It requires a known length;
// per the distilled spec's open question, a non-indexable receiver is
// handled by materializing it first rather than failing outright.
func (b *base[T]) Initial(n int) Sequence[T] {
	idx, ok := b.self.(Indexable[T])
	if !ok {
		idx = NewSliceSequence(ToArray[T](b.self))
	}
	return newTaken(idx, max(idx.Len()-n, 0))
}

// Last returns the last n elements, implemented as reverse().take(n).
// reverse(), exactly as the distilled spec's design notes describe.
func (b *base[T]) Last(n int) Sequence[T] {
	return newReversed(newTaken(newReversed(b.self), n))
}

func (b *base[T]) SortBy(cmp function.Comparator[T]) Sequence[T] {
	return newSorted(b.self, cmp)
}

func (b *base[T]) Shuffle() Sequence[T] {
	return newShuffled(b.self)
}

func (b *base[T]) GetIterator() Iterator[T] {
	if idx, ok := b.self.(Indexable[T]); ok {
		return newIndexIterator[T](idx)
	}
	return newBridgeIterator[T](b.self)
}
