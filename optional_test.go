// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import "testing"

func TestOptionalOf(t *testing.T) {
	o := OptionalOf(42)
	if !o.IsPresent() || o.IsEmpty() {
		t.Fatalf("OptionalOf(42).IsPresent() = %v, want true", o.IsPresent())
	}
	if got := o.Get(); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
}

func TestOptionalEmpty(t *testing.T) {
	o := OptionalEmpty[int]()
	if o.IsPresent() || !o.IsEmpty() {
		t.Fatalf("OptionalEmpty().IsPresent() = %v, want false", o.IsPresent())
	}
}

func TestOptionalGetPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Get() on empty Optional did not panic")
		}
	}()
	OptionalEmpty[int]().Get()
}

func TestOptionalIfPresent(t *testing.T) {
	var seen int
	OptionalOf(7).IfPresent(func(v int) { seen = v })
	if seen != 7 {
		t.Errorf("IfPresent() action saw %d, want 7", seen)
	}

	seen = -1
	OptionalEmpty[int]().IfPresent(func(v int) { seen = v })
	if seen != -1 {
		t.Errorf("IfPresent() on empty Optional ran action, saw %d", seen)
	}
}

func TestOptionalIfPresentOrElse(t *testing.T) {
	var branch string
	OptionalOf(1).IfPresentOrElse(
		func(int) { branch = "present" },
		func() { branch = "empty" },
	)
	if branch != "present" {
		t.Errorf("IfPresentOrElse() branch = %q, want %q", branch, "present")
	}

	OptionalEmpty[int]().IfPresentOrElse(
		func(int) { branch = "present" },
		func() { branch = "empty" },
	)
	if branch != "empty" {
		t.Errorf("IfPresentOrElse() branch = %q, want %q", branch, "empty")
	}
}

func TestOptionalFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	if got := OptionalOf(4).Filter(even); got.IsEmpty() {
		t.Errorf("Filter() on matching value is empty, want present")
	}
	if got := OptionalOf(3).Filter(even); !got.IsEmpty() {
		t.Errorf("Filter() on non-matching value is present, want empty")
	}
	if got := OptionalEmpty[int]().Filter(even); !got.IsEmpty() {
		t.Errorf("Filter() on empty Optional is present, want empty")
	}
}

func TestOptionalOr(t *testing.T) {
	got := OptionalOf(1).Or(func() *Optional[int] { return OptionalOf(2) })
	if got.Get() != 1 {
		t.Errorf("Or() on present Optional = %d, want 1", got.Get())
	}

	got = OptionalEmpty[int]().Or(func() *Optional[int] { return OptionalOf(2) })
	if got.Get() != 2 {
		t.Errorf("Or() on empty Optional = %d, want 2", got.Get())
	}
}

func TestOptionalSeq(t *testing.T) {
	got := ToArray[int](OptionalOf(5).Seq())
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("Seq() on present Optional = %v, want [5]", got)
	}

	got = ToArray[int](OptionalEmpty[int]().Seq())
	if len(got) != 0 {
		t.Errorf("Seq() on empty Optional = %v, want []", got)
	}
}

func TestOptionalOrElse(t *testing.T) {
	if got := OptionalOf(1).OrElse(9); got != 1 {
		t.Errorf("OrElse() on present Optional = %d, want 1", got)
	}
	if got := OptionalEmpty[int]().OrElse(9); got != 9 {
		t.Errorf("OrElse() on empty Optional = %d, want 9", got)
	}
}

func TestOptionalOrElseGet(t *testing.T) {
	if got := OptionalEmpty[int]().OrElseGet(func() int { return 11 }); got != 11 {
		t.Errorf("OrElseGet() on empty Optional = %d, want 11", got)
	}
}

func TestOptionalOrElsePanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("OrElsePanic() on empty Optional did not panic")
		}
	}()
	OptionalEmpty[int]().OrElsePanic()
}

func TestOptionalString(t *testing.T) {
	if got := OptionalOf(3).String(); got != "Optional[3]" {
		t.Errorf("String() = %q, want %q", got, "Optional[3]")
	}
	if got := OptionalEmpty[int]().String(); got != "Optional.empty" {
		t.Errorf("String() = %q, want %q", got, "Optional.empty")
	}
}

func TestOptionalMap(t *testing.T) {
	got := OptionalMap(OptionalOf(3), func(v int) string { return "x" })
	if got.IsEmpty() || got.Get() != "x" {
		t.Errorf("OptionalMap() on present Optional = %v, want Optional[x]", got)
	}

	empty := OptionalMap(OptionalEmpty[int](), func(v int) string { return "x" })
	if !empty.IsEmpty() {
		t.Errorf("OptionalMap() on empty Optional = %v, want empty", empty)
	}
}

func TestOptionalFlatMap(t *testing.T) {
	got := OptionalFlatMap(OptionalOf(3), func(v int) *Optional[string] {
		return OptionalOf("y")
	})
	if got.IsEmpty() || got.Get() != "y" {
		t.Errorf("OptionalFlatMap() on present Optional = %v, want Optional[y]", got)
	}

	empty := OptionalFlatMap(OptionalEmpty[int](), func(v int) *Optional[string] {
		return OptionalOf("y")
	})
	if !empty.IsEmpty() {
		t.Errorf("OptionalFlatMap() on empty Optional = %v, want empty", empty)
	}
}

func TestOptionalFlatMapPanicsOnNilResult(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("OptionalFlatMap() with a nil-returning mapper did not panic")
		}
	}()
	OptionalFlatMap(OptionalOf(3), func(v int) *Optional[string] { return nil })
}
