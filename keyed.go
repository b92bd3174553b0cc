// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"reflect"

	"github.com/lazyseq/lazy/function"
)

// KeyedVisitor is the visit callback for a Keyed sequence: each element
// arrives as (value, key), matching the value-first convention the JS
// original uses for objects.
type KeyedVisitor[V any] func(value V, key string) bool

// Keyed is the key/value specialization of Sequence: elements are (key,
// value) pairs visited value-first. Go's lack of an "undefined" value
// means every key a Keyed holds is considered defined; there is no
// distinct "key present but value undefined" state as in the JS original.
type Keyed[V any] interface {
	// Each visits every (value, key) pair in the sequence's natural
	// order, stopping early if visitor returns false.
	Each(visitor KeyedVisitor[V])

	// Get returns the value for key and whether key is present.
	Get(key string) (V, bool)

	// Keys returns the sequence's keys, in iteration order.
	Keys() Sequence[string]

	// Values returns the sequence's values, in iteration order.
	Values() Sequence[V]

	// Pairs returns the sequence materialized as (key, value) pairs —
	// the Keyed analogue of toArray.
	Pairs() []Pair[string, V]

	// Seq returns a Sequence of the same (key, value) pairs as Pairs,
	// for feeding into ordinary pipeline operators.
	Seq() Sequence[Pair[string, V]]

	// Assign merges other into this Keyed: every key of other is
	// emitted first with other's value, then every key of this Keyed
	// not already emitted follows with its own value. other wins on
	// key conflicts.
	Assign(other map[string]V) Keyed[V]

	// Defaults fills in keys missing from this Keyed using defaults,
	// without overwriting any key already present.
	Defaults(defaults map[string]V) Keyed[V]

	// Pick returns a Keyed restricted to the given keys, preserving
	// this Keyed's order.
	Pick(keys ...string) Keyed[V]

	// Omit returns a Keyed excluding the given keys, preserving this
	// Keyed's order.
	Omit(keys ...string) Keyed[V]
}

// FromMap builds a Keyed over m. Go map iteration order is unspecified, so
// the order captured at construction time — not any later re-range of
// m — is fixed for the life of the returned Keyed; callers who need a
// deterministic order should SortBy the result of Keys().
func FromMap[V any](m map[string]V) Keyed[V] {
	keys := make([]string, 0, len(m))
	data := make(map[string]V, len(m))
	for k, v := range m {
		keys = append(keys, k)
		data[k] = v
	}
	return &mapKeyed[V]{keys: keys, data: data}
}

type mapKeyed[V any] struct {
	keys []string
	data map[string]V
}

func (k *mapKeyed[V]) Each(visitor KeyedVisitor[V]) {
	for _, key := range k.keys {
		if !visitor(k.data[key], key) {
			return
		}
	}
}

func (k *mapKeyed[V]) Get(key string) (V, bool) {
	v, ok := k.data[key]
	return v, ok
}

func (k *mapKeyed[V]) Keys() Sequence[string] {
	out := make([]string, len(k.keys))
	copy(out, k.keys)
	return NewSliceSequence(out)
}

func (k *mapKeyed[V]) Values() Sequence[V] {
	out := make([]V, 0, len(k.keys))
	for _, key := range k.keys {
		out = append(out, k.data[key])
	}
	return NewSliceSequence(out)
}

func (k *mapKeyed[V]) Pairs() []Pair[string, V] {
	out := make([]Pair[string, V], 0, len(k.keys))
	for _, key := range k.keys {
		out = append(out, Pair[string, V]{Key: key, Value: k.data[key]})
	}
	return out
}

func (k *mapKeyed[V]) Seq() Sequence[Pair[string, V]] {
	return NewSliceSequence(k.Pairs())
}

func (k *mapKeyed[V]) Assign(other map[string]V) Keyed[V] {
	seen := make(map[string]struct{}, len(other))
	keys := make([]string, 0, len(k.keys)+len(other))
	data := make(map[string]V, len(k.keys)+len(other))
	for key, v := range other {
		keys = append(keys, key)
		data[key] = v
		seen[key] = struct{}{}
	}
	for _, key := range k.keys {
		if _, ok := seen[key]; ok {
			continue
		}
		keys = append(keys, key)
		data[key] = k.data[key]
	}
	return &mapKeyed[V]{keys: keys, data: data}
}

func (k *mapKeyed[V]) Defaults(defaults map[string]V) Keyed[V] {
	set := make(map[string]struct{}, len(k.keys))
	keys := make([]string, 0, len(k.keys)+len(defaults))
	data := make(map[string]V, len(k.keys)+len(defaults))
	for _, key := range k.keys {
		keys = append(keys, key)
		data[key] = k.data[key]
		set[key] = struct{}{}
	}
	for key, v := range defaults {
		if _, ok := set[key]; ok {
			continue
		}
		keys = append(keys, key)
		data[key] = v
	}
	return &mapKeyed[V]{keys: keys, data: data}
}

func (k *mapKeyed[V]) Pick(keys ...string) Keyed[V] {
	want := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		want[key] = struct{}{}
	}
	outKeys := make([]string, 0, len(keys))
	data := make(map[string]V, len(keys))
	for _, key := range k.keys {
		if _, ok := want[key]; !ok {
			continue
		}
		if v, ok := k.data[key]; ok {
			outKeys = append(outKeys, key)
			data[key] = v
		}
	}
	return &mapKeyed[V]{keys: outKeys, data: data}
}

func (k *mapKeyed[V]) Omit(keys ...string) Keyed[V] {
	excluded := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		excluded[key] = struct{}{}
	}
	outKeys := make([]string, 0, len(k.keys))
	data := make(map[string]V, len(k.keys))
	for _, key := range k.keys {
		if _, ok := excluded[key]; ok {
			continue
		}
		outKeys = append(outKeys, key)
		data[key] = k.data[key]
	}
	return &mapKeyed[V]{keys: outKeys, data: data}
}

// ToMap drains k into a plain map, discarding its iteration order.
func ToMap[V any](k Keyed[V]) map[string]V {
	out := make(map[string]V)
	k.Each(func(v V, key string) bool {
		out[key] = v
		return true
	})
	return out
}

// InvertKeyed swaps each (value, key) pair to (key, value): stringify turns
// a value into the new key, and the old key becomes the new string value.
// Go requires an explicit stringify function since V is not assumed to be
// string-like the way JS object values implicitly are.
func InvertKeyed[V any](k Keyed[V], stringify function.Function[V, string]) Keyed[string] {
	var keys []string
	data := make(map[string]string)
	k.Each(func(v V, key string) bool {
		newKey := stringify(v)
		keys = append(keys, newKey)
		data[newKey] = key
		return true
	})
	return &mapKeyed[string]{keys: keys, data: data}
}

// FunctionsOf returns the keys of k whose value is a function — Go's
// nearest equivalent of the JS original's functions()/methods(), which
// filter an object's own properties down to its callable members.
func FunctionsOf(k Keyed[any]) Sequence[string] {
	var keys []string
	k.Each(func(v any, key string) bool {
		if v != nil && reflect.ValueOf(v).Kind() == reflect.Func {
			keys = append(keys, key)
		}
		return true
	})
	return NewSliceSequence(keys)
}
