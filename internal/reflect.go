package internal

import "reflect"

// IsNil reports whether the value is nil, including typed nils held
// in an interface: nil pointers, functions, maps, slices, channels
// and interfaces.
func IsNil(in any) bool {
	if in == nil {
		return true
	}

	v := reflect.ValueOf(in)
	switch v.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// IsNilReference is like IsNil, except that nil slices and maps are
// not considered nil: an empty collection is still usable.
func IsNilReference(in any) bool {
	if in == nil {
		return true
	}

	switch v := reflect.ValueOf(in); v.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Pointer, reflect.UnsafePointer, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
