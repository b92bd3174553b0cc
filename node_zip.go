// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// Zip emits tuples [e_i, a1_i, a2_i, ...], stopping when s ends. If a
// sidecar array is shorter than s, missing positions are simply omitted
// from that row's tuple rather than padded with a zero value.
func Zip[T any](s Sequence[T], arrays ...[]any) Sequence[[]any] {
	n := &zippedNode[T]{parent: s, arrays: arrays}
	n.self = n
	return n
}

type zippedNode[T any] struct {
	base[[]any]
	parent Sequence[T]
	arrays [][]any
	cache  cache[[]any]
}

func (n *zippedNode[T]) materialize() [][]any {
	return n.cache.materialize(func() [][]any {
		var out [][]any
		n.parent.Each(func(v T, i int) bool {
			row := make([]any, 0, len(n.arrays)+1)
			row = append(row, v)
			for _, arr := range n.arrays {
				if i < len(arr) {
					row = append(row, arr[i])
				}
			}
			out = append(out, row)
			return true
		})
		return out
	})
}

func (n *zippedNode[T]) Each(visitor function.Visitor[[]any]) {
	for i, row := range n.materialize() {
		if !visitor(row, i) {
			return
		}
	}
}

func (n *zippedNode[T]) Get(i int) []any { return n.materialize()[i] }
func (n *zippedNode[T]) Len() int        { return len(n.materialize()) }
