// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// sliceSeq is the in-memory ordered collection source adapter: an
// indexable, O(1) Get/Len sequence with a fast-path Each that loops over
// the underlying buffer directly, the way gostream's Of(data...) hands its
// slice straight to a stream stage with no per-element indirection.
type sliceSeq[T any] struct {
	base[T]
	data []T
}

// NewSliceSequence wraps data as an Indexable sequence. The buffer is used
// directly (not copied); ToArray on the result always returns a defensive
// copy.
func NewSliceSequence[T any](data []T) Indexable[T] {
	s := &sliceSeq[T]{data: data}
	s.self = s
	return s
}

// FromSlice is an alias for NewSliceSequence matching lazy.FromMap/
// lazy.FromString's naming.
func FromSlice[T any](data []T) Indexable[T] {
	return NewSliceSequence(data)
}

func (s *sliceSeq[T]) Each(visitor function.Visitor[T]) {
	for i, v := range s.data {
		if !visitor(v, i) {
			return
		}
	}
}

func (s *sliceSeq[T]) Get(i int) T { return s.data[i] }
func (s *sliceSeq[T]) Len() int    { return len(s.data) }
