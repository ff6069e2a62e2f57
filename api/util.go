package api

import "bytes"
import "reflect"

// Binarycmp compare byte-slice keys.
func Binarycmp(key, limit []byte) int {
	return bytes.Compare(key, limit)
}

// Isnil return true if v is unset, that is, v is of nilable kind
// (pointer, slice, map, chan, func, interface) and holds nil. Values of
// non-nilable kinds are always set.
func Isnil[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
