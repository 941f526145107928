package predicate

import (
	"reflect"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
)

// asString converts a record value to the text predicates inspect.
// nil and values cast cannot convert become "".
func asString(value any) string {
	if value == nil {
		return ""
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return ""
	}
	return s
}

// isPresent reports whether value counts as filled in. Numeric zero and "0" count.
func isPresent(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case []byte:
		return len(v) > 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return isPresent(rv.Elem().Interface())
	case reflect.Bool:
		return rv.Bool()
	default:
		return true
	}
}

// fold returns s in case-folded form for caseless comparison.
// A Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
