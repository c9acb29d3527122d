// Package value provides helpers to inspect arbitrary values, e.g. configuration entries.
package value

import (
	"reflect"
	"strings"
)

// IsEmpty checks whether a value is empty i.e. "", nil, 0, [], {}, false, etc.
// For Strings, a string is considered empty if it is "" or if it only contains whitespaces.
// Pointers are dereferenced.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case bool:
		return !v
	}
	objValue := reflect.ValueOf(value)
	switch objValue.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return objValue.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if objValue.IsNil() {
			return true
		}
		return IsEmpty(objValue.Elem().Interface())
	case reflect.Func:
		return objValue.IsNil()
	default:
		return objValue.IsZero()
	}
}
