package helper

import "reflect"

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// ok is false when the getter reports no value or the value is not a T.
func GetTypedValueOf[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// IsNil reports whether v is a nil interface or holds a nil pointer, map,
// slice, func, chan or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// AsError returns v as an error if it holds a non-nil one, nil otherwise.
// Used to spot the conventional trailing error of a (value, error) result
// whose second type is only known as a type parameter. A typed nil such as
// (*MyErr)(nil) counts as no error.
func AsError(v any) error {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err
	}
	return nil
}
