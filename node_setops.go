// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// Without returns s with every occurrence of any value in vals removed —
// set difference.
func Without[T comparable](s Sequence[T], vals ...T) Sequence[T] {
	excluded := make(map[T]struct{}, len(vals))
	for _, v := range vals {
		excluded[v] = struct{}{}
	}
	n := &withoutNode[T]{parent: s, excluded: excluded}
	n.self = n
	return n
}

type withoutNode[T comparable] struct {
	base[T]
	parent   Sequence[T]
	excluded map[T]struct{}
}

func (n *withoutNode[T]) Each(visitor function.Visitor[T]) {
	i := 0
	n.parent.Each(func(v T, _ int) bool {
		if _, excluded := n.excluded[v]; excluded {
			return true
		}
		keep := visitor(v, i)
		i++
		return keep
	})
}

// Union returns the distinct elements across s and the given arrays, in
// first-occurrence order — concat(arrays).Uniq().
func Union[T comparable](s Sequence[T], arrays ...[]T) Sequence[T] {
	parts := make([]Sequence[T], 0, len(arrays)+1)
	parts = append(parts, s)
	for _, a := range arrays {
		parts = append(parts, NewSliceSequence(a))
	}
	return Uniq[T](newConcatenated(parts))
}

// Intersection returns the elements of s also present in every one of the
// given arrays, preserving s's order and first occurrence of each value.
func Intersection[T comparable](s Sequence[T], arrays ...[]T) Sequence[T] {
	sets := make([]map[T]struct{}, len(arrays))
	for i, a := range arrays {
		set := make(map[T]struct{}, len(a))
		for _, v := range a {
			set[v] = struct{}{}
		}
		sets[i] = set
	}
	n := &intersectionNode[T]{parent: s, sets: sets}
	n.self = n
	return n
}

type intersectionNode[T comparable] struct {
	base[T]
	parent Sequence[T]
	sets   []map[T]struct{}
	cache  cache[T]
}

func (n *intersectionNode[T]) materialize() []T {
	return n.cache.materialize(func() []T {
		var out []T
		emitted := make(map[T]struct{})
		n.parent.Each(func(v T, _ int) bool {
			if _, already := emitted[v]; already {
				return true
			}
			for _, set := range n.sets {
				if _, ok := set[v]; !ok {
					return true
				}
			}
			emitted[v] = struct{}{}
			out = append(out, v)
			return true
		})
		return out
	})
}

func (n *intersectionNode[T]) Each(visitor function.Visitor[T]) {
	for i, v := range n.materialize() {
		if !visitor(v, i) {
			return
		}
	}
}

func (n *intersectionNode[T]) Get(i int) T { return n.materialize()[i] }
func (n *intersectionNode[T]) Len() int    { return len(n.materialize()) }

// Compact filters out zero-valued ("falsy") elements — Go's nearest
// equivalent to the JS original's truthiness check.
func Compact[T comparable](s Sequence[T]) Sequence[T] {
	var zero T
	return s.Filter(func(v T) bool { return v != zero })
}
