// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "github.com/lazyseq/lazy/function"

// concatenatedNode emits each parent's elements in order, a streaming node
// with no cache and no random access — matching gostream's Concat, which
// is always returned as a non-parallel, purely sequential stream.
type concatenatedNode[T any] struct {
	base[T]
	parents []Sequence[T]
}

func newConcatenated[T any](parents []Sequence[T]) *concatenatedNode[T] {
	n := &concatenatedNode[T]{parents: parents}
	n.self = n
	return n
}

func (n *concatenatedNode[T]) Each(visitor function.Visitor[T]) {
	i := 0
	stopped := false
	for _, p := range n.parents {
		if stopped {
			return
		}
		p.Each(func(v T, _ int) bool {
			if !visitor(v, i) {
				stopped = true
				return false
			}
			i++
			return true
		})
	}
}
