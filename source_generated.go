// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"math"

	"github.com/lazyseq/lazy/function"
)

// Generate builds a sequence whose i-th element is gen(i). With length
// supplied, the result is Indexable and bounded; with no length, the
// result is unbounded — only short-circuiting terminals (Find, Every,
// Some, IndexOf) or Take make it safe to drive to completion. Constructing
// the pipeline never invokes gen; invocations begin only on a terminal
// operation or a downstream Get.
func Generate[T any](gen func(i int) T, length ...int) Sequence[T] {
	if len(length) > 0 {
		n := &generatedNode[T]{gen: gen, length: length[0]}
		n.self = n
		return n
	}
	n := &unboundedGeneratedNode[T]{gen: gen}
	n.self = n
	return n
}

type generatedNode[T any] struct {
	base[T]
	gen    func(i int) T
	length int
}

func (n *generatedNode[T]) Each(visitor function.Visitor[T]) {
	for i := 0; i < n.length; i++ {
		if !visitor(n.gen(i), i) {
			return
		}
	}
}

func (n *generatedNode[T]) Get(i int) T { return n.gen(i) }
func (n *generatedNode[T]) Len() int    { return n.length }

type unboundedGeneratedNode[T any] struct {
	base[T]
	gen func(i int) T
}

func (n *unboundedGeneratedNode[T]) Each(visitor function.Visitor[T]) {
	for i := 0; ; i++ {
		if !visitor(n.gen(i), i) {
			return
		}
	}
}

// isUnbounded marks this node to TryToArray and similar guarded terminals,
// letting them refuse to run rather than loop forever.
func (n *unboundedGeneratedNode[T]) isUnbounded() bool { return true }

// Range returns the arithmetic sequence start, start+step, … stopping
// before stop, per the distilled spec's 1/2/3-argument overload table:
// Range(stop), Range(start, stop), or Range(start, stop, step).
func Range[T Number](args ...T) Sequence[T] {
	var start, stop, step T
	switch len(args) {
	case 1:
		start, stop, step = 0, args[0], 1
	case 2:
		start, stop, step = args[0], args[1], 1
	case 3:
		start, stop, step = args[0], args[1], args[2]
	default:
		panic("lazy: Range takes 1, 2, or 3 arguments")
	}
	if step == 0 {
		panic("lazy: Range step must not be zero")
	}
	length := 0
	if (step > 0 && stop > start) || (step < 0 && stop < start) {
		length = int(math.Ceil(float64(stop-start) / float64(step)))
	}
	n := &generatedNode[T]{
		gen:    func(i int) T { return start + T(i)*step },
		length: length,
	}
	n.self = n
	return n
}

// Repeat returns value repeated count times, or unboundedly if count is
// omitted.
func Repeat[T any](value T, count ...int) Sequence[T] {
	return Generate(func(int) T { return value }, count...)
}
