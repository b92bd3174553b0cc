// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "testing"

func TestUniqSmallStrategy(t *testing.T) {
	data := []int{1, 2, 2, 3, 1, 4}
	s := FromSlice(data)
	if s.Len() >= uniqueSmallThreshold {
		t.Fatalf("test fixture is not below uniqueSmallThreshold")
	}

	uniq := Uniq[int](s)
	if _, ok := uniq.(*uniqueRescanNode[int]); !ok {
		t.Fatalf("Uniq() of a %d-element source = %T, want *uniqueRescanNode", len(data), uniq)
	}
	got := ToArray[int](uniq)
	if !equalInts(got, []int{1, 2, 3, 4}) {
		t.Errorf("Uniq() = %v, want [1 2 3 4]", got)
	}
}

func TestUniqArrayCacheStrategy(t *testing.T) {
	data := make([]int, 100)
	for i := range data {
		data[i] = i % 30
	}
	uniq := Uniq[int](FromSlice(data))
	if _, ok := uniq.(*uniqueArrayCacheNode[int]); !ok {
		t.Fatalf("Uniq() of a 100-element source = %T, want *uniqueArrayCacheNode", uniq)
	}
	got := ToArray[int](uniq)
	if len(got) != 30 {
		t.Errorf("Uniq() produced %d distinct values, want 30", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Errorf("Uniq()[%d] = %d, want %d (first-occurrence order)", i, v, i)
			break
		}
	}
}

func TestUniqSetCacheStrategy(t *testing.T) {
	data := make([]int, 1000)
	for i := range data {
		data[i] = i % 50
	}
	uniq := Uniq[int](FromSlice(data))
	if _, ok := uniq.(*uniqueSetCacheNode[int]); !ok {
		t.Fatalf("Uniq() of a 1000-element source = %T, want *uniqueSetCacheNode", uniq)
	}
	got := ToArray[int](uniq)
	if len(got) != 50 {
		t.Errorf("Uniq() produced %d distinct values, want 50", len(got))
	}
}

func TestUniqOverNonIndexableUsesSetCache(t *testing.T) {
	s := newNonIndexableInts([]int{1, 1, 2, 3, 2})
	uniq := Uniq[int](s)
	if _, ok := uniq.(*uniqueSetCacheNode[int]); !ok {
		t.Fatalf("Uniq() of a non-Indexable source = %T, want *uniqueSetCacheNode", uniq)
	}
	got := ToArray[int](uniq)
	if !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("Uniq() = %v, want [1 2 3]", got)
	}
}

func TestUniqStopsEarly(t *testing.T) {
	s := FromSlice([]int{1, 1, 2, 3, 4})
	var seen []int
	Uniq[int](s).Each(func(v int, _ int) bool {
		seen = append(seen, v)
		return v < 2
	})
	if !equalInts(seen, []int{1, 2}) {
		t.Errorf("Uniq() stopped at %v, want [1 2]", seen)
	}
}
