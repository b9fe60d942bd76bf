// Package copier is a deep-copy engine with per-field filters.
// The copy itself is made by github.com/mohae/deepcopy, registered filters are applied to the result.
package copier

import (
	"reflect"

	"github.com/mohae/deepcopy"

	"github.com/anyproto/any-copydebug/app/logger"
)

const CName = "copier"

var log = logger.NewNamed(CName)

type filterEntry struct {
	matcher Matcher
	filter  Filter
}

// Copier is not safe for concurrent AddFilter and Copy calls
type Copier struct {
	filters []filterEntry
}

func New() *Copier {
	return &Copier{}
}

// AddFilter registers a filter. For every field only the first matching filter is applied, in registration order
func (c *Copier) AddFilter(filter Filter, matcher Matcher) *Copier {
	c.filters = append(c.filters, filterEntry{matcher: matcher, filter: filter})
	return c
}

// Copy returns a deep copy of v with filters applied to exported struct fields,
// including structs held in slices, arrays, maps and interfaces. Unexported fields are not copied
func (c *Copier) Copy(v any) any {
	if v == nil {
		return nil
	}
	cp := deepcopy.Copy(v)
	src, dst := reflect.ValueOf(v), reflect.ValueOf(cp)
	switch dst.Kind() {
	case reflect.Pointer:
		if !dst.IsNil() {
			c.walk(dst.Elem(), src.Elem())
		}
		return cp
	case reflect.Struct:
		tmp := reflect.New(dst.Type()).Elem()
		tmp.Set(dst)
		c.applyStruct(tmp, src)
		return tmp.Interface()
	default:
		c.walk(dst, src)
		return cp
	}
}

// walk applies filters to the structs reachable from dst: nested structs, pointers,
// slice and array elements, map values and interface values.
// Map values are matched to the original by key, entries with pointer keys are left as copied
func (c *Copier) walk(dst, src reflect.Value) {
	switch dst.Kind() {
	case reflect.Struct:
		c.applyStruct(dst, src)
	case reflect.Pointer:
		if !dst.IsNil() && !src.IsNil() {
			c.walk(dst.Elem(), src.Elem())
		}
	case reflect.Slice, reflect.Array:
		n := min(dst.Len(), src.Len())
		for i := 0; i < n; i++ {
			c.walk(dst.Index(i), src.Index(i))
		}
	case reflect.Map:
		if dst.IsNil() || src.IsNil() {
			return
		}
		for _, key := range dst.MapKeys() {
			sv := src.MapIndex(key)
			if !sv.IsValid() {
				continue
			}
			// map values are not addressable
			tmp := reflect.New(dst.Type().Elem()).Elem()
			tmp.Set(dst.MapIndex(key))
			c.walk(tmp, sv)
			dst.SetMapIndex(key, tmp)
		}
	case reflect.Interface:
		if dst.IsNil() || src.IsNil() || !dst.CanSet() {
			return
		}
		de, se := dst.Elem(), src.Elem()
		if de.Kind() == reflect.Pointer {
			c.walk(de, se)
			return
		}
		tmp := reflect.New(de.Type()).Elem()
		tmp.Set(de)
		c.walk(tmp, se)
		dst.Set(tmp)
	}
}

func (c *Copier) applyStruct(dst, src reflect.Value) {
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		df, sf := dst.Field(i), src.Field(i)
		if filter := c.match(t, field); filter != nil {
			filter.Apply(df, sf)
			continue
		}
		c.walk(df, sf)
	}
}

func (c *Copier) match(owner reflect.Type, field reflect.StructField) Filter {
	for _, f := range c.filters {
		if f.matcher.Matches(owner, field) {
			return f.filter
		}
	}
	return nil
}
