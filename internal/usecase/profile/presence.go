package profile

import (
	"reflect"
	"strings"
	"time"
)

// IsFilled reports whether a profile field value counts as entered.
//
// Nil values, nil pointers and blank strings are empty. Collections are filled
// when they have at least one element. Numbers are always filled, zero
// included, so optional numeric fields must be pointers for "unset" to exist.
func IsFilled(value any) bool {
	if value == nil {
		return false
	}

	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return true
	case time.Time:
		return !v.IsZero()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return false
		}
		return IsFilled(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		return rv.Len() > 0
	case reflect.Array:
		return rv.Len() > 0
	case reflect.String:
		return strings.TrimSpace(rv.String()) != ""
	case reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}
