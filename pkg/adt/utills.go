package adt

import "reflect"

// IsNil reports whether v is an untyped nil or a nil pointer, map, channel,
// func, interface or unsafe pointer. Nil slices are valid empty slices and
// are not reported.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Identity returns its argument. Mapping with Identity leaves every container
// unchanged.
func Identity[T any](v T) T {
	return v
}

// Compose returns g after f.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
