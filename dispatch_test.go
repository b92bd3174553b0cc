// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "testing"

func TestOfString(t *testing.T) {
	got := ToArray[any](Of("abc"))
	want := []any{"a", "b", "c"}
	if !equalAny(got, want) {
		t.Errorf("Of(\"abc\") = %v, want %v", got, want)
	}
}

func TestOfSlice(t *testing.T) {
	got := ToArray[any](Of([]int{1, 2, 3}))
	want := []any{1, 2, 3}
	if !equalAny(got, want) {
		t.Errorf("Of([]int{1,2,3}) = %v, want %v", got, want)
	}
}

func TestOfArray(t *testing.T) {
	got := ToArray[any](Of([2]string{"x", "y"}))
	want := []any{"x", "y"}
	if !equalAny(got, want) {
		t.Errorf("Of([2]string{...}) = %v, want %v", got, want)
	}
}

func TestOfMap(t *testing.T) {
	seq := Of(map[string]int{"a": 1})
	got := ToArray[any](seq)
	if len(got) != 1 {
		t.Fatalf("Of(map) = %v, want 1 element", got)
	}
	pair, ok := got[0].(Pair[string, any])
	if !ok {
		t.Fatalf("Of(map) element = %T, want Pair[string, any]", got[0])
	}
	if pair.Key != "a" || pair.Value != 1 {
		t.Errorf("Of(map) pair = %+v, want {a 1}", pair)
	}
}

func TestOfScalar(t *testing.T) {
	got := ToArray[any](Of(42))
	want := []any{42}
	if !equalAny(got, want) {
		t.Errorf("Of(42) = %v, want %v", got, want)
	}
}

func TestOfPassesThroughAnExistingSequence(t *testing.T) {
	seq := NewSliceSequence([]any{1, 2})
	got := Of(seq)
	if got != Sequence[any](seq) {
		t.Errorf("Of() on an existing Sequence[any] did not return it unchanged")
	}
}

func equalAny(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
