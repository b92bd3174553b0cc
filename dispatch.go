// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"fmt"
	"reflect"
)

// Of is the top-level dispatch entry point: it returns x unchanged if it
// is already a Sequence[any], and otherwise wraps it according to its
// dynamic kind — string, slice/array, map, or a bare scalar treated as a
// singleton. Callers who already know their input's concrete type should
// prefer the typed constructors (FromSlice, FromMap, FromString) to avoid
// the any-erasure this dispatch necessarily performs.
func Of(x any) Sequence[any] {
	if seq, ok := x.(Sequence[any]); ok {
		return seq
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.String:
		ss := FromString(x.(string))
		runes := ToArray[rune](ss)
		out := make([]any, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return NewSliceSequence(out)

	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return NewSliceSequence(out)

	case reflect.Map:
		keys := rv.MapKeys()
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, Pair[string, any]{
				Key:   fmt.Sprint(k.Interface()),
				Value: rv.MapIndex(k).Interface(),
			})
		}
		return NewSliceSequence(out)

	default:
		return NewSliceSequence([]any{x})
	}
}
