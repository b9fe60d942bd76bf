package copier

import (
	"reflect"

	"github.com/anyproto/any-copydebug/util/typename"
)

// Matcher decides whether a struct field gets a filter on copy
type Matcher interface {
	Matches(owner reflect.Type, field reflect.StructField) bool
}

// PropertyNameMatcher matches a field by name on any struct
type PropertyNameMatcher struct {
	property string
}

func NewPropertyNameMatcher(property string) PropertyNameMatcher {
	return PropertyNameMatcher{property: property}
}

func (m PropertyNameMatcher) Matches(_ reflect.Type, field reflect.StructField) bool {
	return field.Name == m.property
}

// PropertyMatcher matches a field by name on one struct type.
// class is the fully-qualified type name, see typename.Of
type PropertyMatcher struct {
	class    string
	property string
}

func NewPropertyMatcher(class, property string) PropertyMatcher {
	return PropertyMatcher{class: class, property: property}
}

// NewPropertyMatcherFor is NewPropertyMatcher with the class taken from a sample value
func NewPropertyMatcherFor(sample any, property string) PropertyMatcher {
	return NewPropertyMatcher(typename.OfValue(sample), property)
}

func (m PropertyMatcher) Matches(owner reflect.Type, field reflect.StructField) bool {
	return field.Name == m.property && typename.Equal(typename.Of(owner), m.class)
}

// PropertyTypeMatcher matches every field of the given type
type PropertyTypeMatcher struct {
	propertyType string
}

func NewPropertyTypeMatcher(propertyType string) PropertyTypeMatcher {
	return PropertyTypeMatcher{propertyType: propertyType}
}

// NewPropertyTypeMatcherFor is NewPropertyTypeMatcher with the type taken from a sample value
func NewPropertyTypeMatcherFor(sample any) PropertyTypeMatcher {
	return NewPropertyTypeMatcher(typename.OfValue(sample))
}

func (m PropertyTypeMatcher) Matches(_ reflect.Type, field reflect.StructField) bool {
	return typename.Equal(typename.Of(field.Type), m.propertyType)
}
