// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "testing"

func TestWithout(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 2, 4, 1})
	got := ToArray[int](Without[int](s, 1, 2))
	if !equalInts(got, []int{3, 4}) {
		t.Errorf("Without() = %v, want [3 4]", got)
	}
}

func TestWithoutReindexes(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	var indices []int
	Without[int](s, 2).Each(func(_ int, i int) bool {
		indices = append(indices, i)
		return true
	})
	if !equalInts(indices, []int{0, 1}) {
		t.Errorf("Without() indices = %v, want [0 1]", indices)
	}
}

func TestUnion(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	got := ToArray[int](Union[int](s, []int{2, 3, 4}, []int{4, 5}))
	if !equalInts(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("Union() = %v, want [1 2 3 4 5]", got)
	}
}

func TestIntersection(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4})
	got := ToArray[int](Intersection[int](s, []int{2, 3, 4, 5}, []int{3, 4}))
	if !equalInts(got, []int{3, 4}) {
		t.Errorf("Intersection() = %v, want [3 4]", got)
	}
}

func TestIntersectionDedupsAndIsCached(t *testing.T) {
	s := FromSlice([]int{1, 1, 2})
	inter := Intersection[int](s, []int{1, 2})
	idx, ok := inter.(Indexable[int])
	if !ok {
		t.Fatalf("Intersection() result is not Indexable")
	}
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (first occurrence of each value only)", idx.Len())
	}
}

func TestCompact(t *testing.T) {
	s := FromSlice([]int{1, 0, 2, 0, 3})
	got := ToArray[int](Compact[int](s))
	if !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("Compact() = %v, want [1 2 3]", got)
	}
}

func TestCompactStrings(t *testing.T) {
	s := FromSlice([]string{"a", "", "b", ""})
	got := ToArray[string](Compact[string](s))
	if !equalStrings(got, []string{"a", "b"}) {
		t.Errorf("Compact() = %v, want [a b]", got)
	}
}
