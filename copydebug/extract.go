package copydebug

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/anyproto/any-copydebug/util/typename"
)

// extractFilterRules reads the unexported filter list of the engine.
// Unexported fields are read with reflect only, nothing is written
func extractFilterRules(engine any, conf Config) ([]FilterRule, error) {
	ev := indirect(reflect.ValueOf(engine))
	if !ev.IsValid() {
		return nil, introspectionErr("engine is nil")
	}
	if ev.Kind() != reflect.Struct {
		return nil, introspectionErr("engine %s is not a struct", ev.Type())
	}
	list := ev.FieldByName(conf.FiltersField)
	if !list.IsValid() {
		return nil, introspectionErr("engine %s has no field %q", typename.Of(ev.Type()), conf.FiltersField)
	}
	if list.Kind() != reflect.Slice && list.Kind() != reflect.Array {
		return nil, introspectionErr("engine field %q is %s, not a list", conf.FiltersField, list.Kind())
	}

	rules := make([]FilterRule, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		rule, err := readRegistration(list.Index(i), conf)
		if err != nil {
			return nil, fmt.Errorf("filter #%d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func readRegistration(v reflect.Value, conf Config) (FilterRule, error) {
	rv := indirect(v)
	if !rv.IsValid() {
		return nil, introspectionErr("registration is nil")
	}
	if rv.Kind() != reflect.Struct {
		return nil, introspectionErr("registration %s is not a struct", rv.Type())
	}

	matcher, err := readField(rv, conf.MatcherField)
	if err != nil {
		return nil, err
	}
	filter, err := readField(rv, conf.FilterField)
	if err != nil {
		return nil, err
	}
	reg := Registration{
		Matcher: typename.Of(matcher.Type()),
		Filter:  typename.Of(filter.Type()),
	}

	str := func(name string) (string, error) {
		return stringField(matcher, name)
	}
	// the package path is part of the kind: a same-named matcher of another package is unrecognized
	switch typename.Normalize(reg.Matcher) {
	case typename.Normalize(conf.Matchers.PropertyName):
		property, err := str(conf.Fields.Property)
		if err != nil {
			return nil, err
		}
		return PropertyNameRule{Registration: reg, Property: property}, nil
	case typename.Normalize(conf.Matchers.ClassProperty):
		class, err := str(conf.Fields.Class)
		if err != nil {
			return nil, err
		}
		property, err := str(conf.Fields.Property)
		if err != nil {
			return nil, err
		}
		return ClassPropertyRule{Registration: reg, Class: class, Property: property}, nil
	case typename.Normalize(conf.Matchers.PropertyType):
		propertyType, err := str(conf.Fields.PropertyType)
		if err != nil {
			return nil, err
		}
		return PropertyTypeRule{Registration: reg, PropertyType: propertyType}, nil
	default:
		log.Debug("unrecognized matcher", zap.String("matcher", reg.Matcher), zap.String("filter", reg.Filter))
		return UnrecognizedRule{Registration: reg}, nil
	}
}

// readField returns the concrete value behind the named field
func readField(owner reflect.Value, name string) (reflect.Value, error) {
	f := owner.FieldByName(name)
	if !f.IsValid() {
		return reflect.Value{}, introspectionErr("%s has no field %q", typename.Of(owner.Type()), name)
	}
	v := indirect(f)
	if !v.IsValid() {
		return reflect.Value{}, introspectionErr("%s.%s is nil", typename.Of(owner.Type()), name)
	}
	return v, nil
}

func stringField(matcher reflect.Value, name string) (string, error) {
	if matcher.Kind() != reflect.Struct {
		return "", introspectionErr("matcher %s is not a struct", matcher.Type())
	}
	f := matcher.FieldByName(name)
	if !f.IsValid() {
		return "", introspectionErr("matcher %s has no field %q", typename.Of(matcher.Type()), name)
	}
	if f.Kind() != reflect.String {
		return "", introspectionErr("matcher field %s.%s is %s, not a string", typename.Of(matcher.Type()), name, f.Kind())
	}
	return f.String(), nil
}

// indirect unwraps interfaces and pointers, returns an invalid value on nil
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
