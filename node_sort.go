// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"sort"

	"github.com/lazyseq/lazy/function"
)

// sortedNode materializes its parent and total-orders it by cmp. The sort
// is not guaranteed stable, per the distilled spec's ordering policy.
type sortedNode[T any] struct {
	base[T]
	parent Sequence[T]
	cmp    function.Comparator[T]
	cache  cache[T]
}

func newSorted[T any](parent Sequence[T], cmp function.Comparator[T]) *sortedNode[T] {
	n := &sortedNode[T]{parent: parent, cmp: cmp}
	n.self = n
	return n
}

func (n *sortedNode[T]) materialize() []T {
	return n.cache.materialize(func() []T {
		out := ToArray[T](n.parent)
		sort.Slice(out, func(i, j int) bool {
			return n.cmp(out[i], out[j]) < 0
		})
		return out
	})
}

func (n *sortedNode[T]) Each(visitor function.Visitor[T]) {
	for i, v := range n.materialize() {
		if !visitor(v, i) {
			return
		}
	}
}

func (n *sortedNode[T]) Get(i int) T { return n.materialize()[i] }
func (n *sortedNode[T]) Len() int    { return len(n.materialize()) }
