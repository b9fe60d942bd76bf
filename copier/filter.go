package copier

import (
	"reflect"

	"go.uber.org/zap"
)

// Filter rewrites a copied field. dst is the settable field of the copy, src the same field of the original
type Filter interface {
	Apply(dst, src reflect.Value)
}

// SetZeroFilter resets the field to its zero value
type SetZeroFilter struct{}

func (SetZeroFilter) Apply(dst, _ reflect.Value) {
	dst.Set(reflect.Zero(dst.Type()))
}

// KeepFilter keeps the original value without copying it
type KeepFilter struct{}

func (KeepFilter) Apply(dst, src reflect.Value) {
	dst.Set(src)
}

// ReplaceFilter sets the field to the result of fn called with the original value
type ReplaceFilter struct {
	fn func(v any) any
}

func NewReplaceFilter(fn func(v any) any) ReplaceFilter {
	return ReplaceFilter{fn: fn}
}

func (f ReplaceFilter) Apply(dst, src reflect.Value) {
	res := f.fn(src.Interface())
	if res == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	rv := reflect.ValueOf(res)
	if !rv.Type().AssignableTo(dst.Type()) {
		log.Warn("replace result is not assignable",
			zap.String("want", dst.Type().String()),
			zap.String("got", rv.Type().String()),
		)
		return
	}
	dst.Set(rv)
}
