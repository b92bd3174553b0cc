// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"math/rand/v2"

	"github.com/lazyseq/lazy/function"
)

// shuffledNode materializes its parent into a cached copy and permutes it
// with a textbook Fisher-Yates shuffle. The distilled spec flags the JS
// original's swap-index expression as a bug (it indexes one past the
// shrinking upper bound); this port uses the correct uniform permutation
// rather than reproducing it.
type shuffledNode[T any] struct {
	base[T]
	parent Sequence[T]
	cache  cache[T]
}

func newShuffled[T any](parent Sequence[T]) *shuffledNode[T] {
	n := &shuffledNode[T]{parent: parent}
	n.self = n
	return n
}

func (n *shuffledNode[T]) materialize() []T {
	return n.cache.materialize(func() []T {
		out := ToArray[T](n.parent)
		for i := len(out) - 1; i > 0; i-- {
			j := rand.IntN(i + 1)
			out[i], out[j] = out[j], out[i]
		}
		return out
	})
}

func (n *shuffledNode[T]) Each(visitor function.Visitor[T]) {
	for i, v := range n.materialize() {
		if !visitor(v, i) {
			return
		}
	}
}

func (n *shuffledNode[T]) Get(i int) T { return n.materialize()[i] }
func (n *shuffledNode[T]) Len() int    { return len(n.materialize()) }
