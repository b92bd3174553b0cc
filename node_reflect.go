// Copyright © 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"reflect"
)

// getProperty looks up name on v, the way the JS original's where/pluck
// treat every element as a loosely-typed object: v may be a
// map[string]any (key lookup) or a struct/*struct (field lookup).
func getProperty(v any, name string) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		val := rv.MapIndex(reflect.ValueOf(name))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		field := rv.FieldByName(name)
		if !field.IsValid() {
			return nil, false
		}
		return field.Interface(), true
	default:
		return nil, false
	}
}

// invokeMethod calls the nullary method name on v via reflection.
func invokeMethod(v any, name string) (any, bool) {
	rv := reflect.ValueOf(v)
	method := rv.MethodByName(name)
	if !method.IsValid() {
		return nil, false
	}
	results := method.Call(nil)
	if len(results) == 0 {
		return nil, true
	}
	return results[0].Interface(), true
}

// Pluck maps each element of s to the value of its name property.
func Pluck[R any](s Sequence[any], name string) Sequence[R] {
	return Map[any, R](s, func(v any, _ int) R {
		prop, _ := getProperty(v, name)
		r, _ := prop.(R)
		return r
	})
}

// Invoke maps each element of s to the result of calling its nullary
// method name.
func Invoke[R any](s Sequence[any], name string) Sequence[R] {
	return Map[any, R](s, func(v any, _ int) R {
		result, _ := invokeMethod(v, name)
		r, _ := result.(R)
		return r
	})
}

// Where filters s to elements matching every key/value pair in props.
func Where(s Sequence[any], props map[string]any) Sequence[any] {
	return s.Filter(func(v any) bool {
		for k, want := range props {
			got, ok := getProperty(v, k)
			if !ok || !reflect.DeepEqual(got, want) {
				return false
			}
		}
		return true
	})
}

// FindWhere returns the first element of s matching every key/value pair
// in props.
func FindWhere(s Sequence[any], props map[string]any) (any, bool) {
	return Find[any](s, func(v any) bool {
		for k, want := range props {
			got, ok := getProperty(v, k)
			if !ok || !reflect.DeepEqual(got, want) {
				return false
			}
		}
		return true
	})
}
