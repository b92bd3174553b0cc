// Copyright © 2021, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "testing"

func TestDefaultCompareInts(t *testing.T) {
	cases := []struct {
		a, b int
		want int
	}{
		{1, 1, 0},
		{2, 1, 1},
		{1, 2, -1},
	}
	for _, c := range cases {
		if got := DefaultCompare(c.a, c.b); got != c.want {
			t.Errorf("DefaultCompare(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDefaultCompareStrings(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"a", "a", 0},
		{"b", "a", 1},
		{"a", "b", -1},
	}
	for _, c := range cases {
		if got := DefaultCompare(c.a, c.b); got != c.want {
			t.Errorf("DefaultCompare(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

type version struct {
	major, minor int
}

func (v version) CompareTo(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

func TestComparableInterface(t *testing.T) {
	v1 := version{1, 5}
	v2 := version{1, 9}
	if v1.CompareTo(v2) >= 0 {
		t.Errorf("version{1,5}.CompareTo(version{1,9}) >= 0, want < 0")
	}
	if v2.CompareTo(v1) <= 0 {
		t.Errorf("version{1,9}.CompareTo(version{1,5}) <= 0, want > 0")
	}
}

func TestSortByComparable(t *testing.T) {
	s := FromSlice([]version{{2, 0}, {1, 9}, {1, 5}})
	got := ToArray[version](SortByComparable[version](s))
	want := []version{{1, 5}, {1, 9}, {2, 0}}
	if len(got) != len(want) {
		t.Fatalf("SortByComparable() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortByComparable()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSortedIndexComparable(t *testing.T) {
	s := FromSlice([]version{{1, 0}, {1, 5}, {2, 0}, {3, 0}})
	got := SortedIndexComparable[version](s, version{1, 9})
	if got != 2 {
		t.Errorf("SortedIndexComparable() = %d, want 2", got)
	}
}
