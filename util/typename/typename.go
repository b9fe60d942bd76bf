// Package typename produces fully-qualified names for Go types.
package typename

import (
	"reflect"
	"strings"
)

// Indirect strips pointer levels from t
func Indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// Of returns the fully-qualified name of t, i.e. "import/path.Name"
// Pointers are dereferenced. Unnamed types are returned as t.String()
func Of(t reflect.Type) string {
	t = Indirect(t)
	if t == nil {
		return ""
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// OfValue is Of(reflect.TypeOf(v))
func OfValue(v any) string {
	return Of(reflect.TypeOf(v))
}

// Normalize trims whitespace and leading pointer markers so "*pkg.T" and "pkg.T" compare equal
func Normalize(name string) string {
	return strings.TrimLeft(strings.TrimSpace(name), "*")
}

// Equal compares two type names after normalization
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
