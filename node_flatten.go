// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"reflect"

	"github.com/lazyseq/lazy/function"
)

// Flatten recursively inlines nested ordered collections (slices, arrays,
// or Sequence[any] values) found among s's elements. Flatten only makes
// sense over a dynamically-typed sequence, so it operates on Sequence[any]
// — the Go analogue of the JS original's untyped arrays-of-anything.
func Flatten(s Sequence[any]) Sequence[any] {
	n := &flattenedNode{parent: s}
	n.self = n
	return n
}

type flattenedNode struct {
	base[any]
	parent Sequence[any]
	cache  cache[any]
}

func (n *flattenedNode) materialize() []any {
	return n.cache.materialize(func() []any {
		var out []any
		var walk func(v any) bool
		walk = func(v any) bool {
			if inner, ok := v.(Sequence[any]); ok {
				cont := true
				inner.Each(func(e any, _ int) bool {
					cont = walk(e)
					return cont
				})
				return cont
			}
			rv := reflect.ValueOf(v)
			if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
				for i := 0; i < rv.Len(); i++ {
					if !walk(rv.Index(i).Interface()) {
						return false
					}
				}
				return true
			}
			out = append(out, v)
			return true
		}

		n.parent.Each(func(v any, _ int) bool {
			return walk(v)
		})
		return out
	})
}

func (n *flattenedNode) Each(visitor function.Visitor[any]) {
	for i, v := range n.materialize() {
		if !visitor(v, i) {
			return
		}
	}
}

func (n *flattenedNode) Get(i int) any { return n.materialize()[i] }
func (n *flattenedNode) Len() int      { return len(n.materialize()) }
