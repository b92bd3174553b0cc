// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"testing"

	"github.com/lazyseq/lazy/function"
)

func TestReverseIndexable(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	reversed := s.Reverse()

	idx, ok := reversed.(Indexable[int])
	if !ok {
		t.Fatalf("Reverse() of an Indexable source is not Indexable")
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}
	if idx.Get(0) != 3 || idx.Get(2) != 1 {
		t.Errorf("Get(0)=%d Get(2)=%d, want 3, 1", idx.Get(0), idx.Get(2))
	}
}

func TestReverseNonIndexable(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	ch <- "c"
	close(ch)
	s := FromChannel(ch)

	got := ToArray[string](s.Reverse())
	if !equalStrings(got, []string{"c", "b", "a"}) {
		t.Errorf("Reverse() = %v, want [c b a]", got)
	}
}

// nonIndexableInts wraps a slice source behind a plain Sequence[int] (via
// its Each method alone), hiding its Indexable-ness so the cache-based
// reverse node is the one under test.
type nonIndexableInts struct {
	base[int]
	data []int
}

func newNonIndexableInts(data []int) *nonIndexableInts {
	n := &nonIndexableInts{data: data}
	n.self = n
	return n
}

func (n *nonIndexableInts) Each(visitor function.Visitor[int]) {
	for i, v := range n.data {
		if !visitor(v, i) {
			return
		}
	}
}

func TestReverseNonIndexableMaterializesOnce(t *testing.T) {
	calls := 0
	mapped := Map[int, int](newNonIndexableInts([]int{1, 2, 3}), func(v int, _ int) int {
		calls++
		return v
	})
	reversed := mapped.Reverse()

	if _, ok := reversed.(Indexable[int]); ok {
		t.Fatalf("Reverse() of a non-Indexable source unexpectedly is Indexable")
	}
	got1 := ToArray[int](reversed)
	got2 := ToArray[int](reversed)
	if !equalInts(got1, []int{3, 2, 1}) || !equalInts(got2, []int{3, 2, 1}) {
		t.Errorf("ToArray() pass1=%v pass2=%v, want [3 2 1] both times", got1, got2)
	}
	if calls != 3 {
		t.Errorf("mapper invoked %d times across two Each passes, want 3 (reverse materializes once)", calls)
	}
}
