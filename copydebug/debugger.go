// Package copydebug reports which struct fields are covered by the filters of a deep-copy engine.
//
// The engine keeps its filters in an unexported list, the Debugger reads that list with reflect
// and matches every registration against the fields of a type. Queries are recomputed on every call.
// The Debugger does not lock the engine: do not add filters to it while a query runs.
package copydebug

import (
	"reflect"
	"sync"

	"github.com/anyproto/any-copydebug/util/typename"
)

type Debugger struct {
	engine any
	conf   Config

	mu    sync.RWMutex
	types map[string]reflect.Type
}

func New(engine any, conf Config) *Debugger {
	return &Debugger{
		engine: engine,
		conf:   conf.withDefaults(),
		types:  make(map[string]reflect.Type),
	}
}

// RegisterTypes makes the types of the samples resolvable by name in Classify
func (d *Debugger) RegisterTypes(samples ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, s := range samples {
		t := typename.Indirect(reflect.TypeOf(s))
		if t == nil {
			continue
		}
		d.types[typename.Of(t)] = t
	}
}

// FilterRules returns the engine filters in registration order
func (d *Debugger) FilterRules() ([]FilterRule, error) {
	return extractFilterRules(d.engine, d.conf)
}

// Classify maps every property of target to the rules applying to it.
// target is a value, a reflect.Type or the name of a registered type,
// either fully-qualified or the bare type name when it is unambiguous
func (d *Debugger) Classify(target any) (Classification, error) {
	rules, err := d.FilterRules()
	if err != nil {
		return nil, err
	}
	t, err := d.resolve(target)
	if err != nil {
		return nil, err
	}
	return classify(t, rules), nil
}

// MatchedProperties returns the properties of target with at least one rule
func (d *Debugger) MatchedProperties(target any) (Classification, error) {
	c, err := d.Classify(target)
	if err != nil {
		return nil, err
	}
	return c.Matched(), nil
}

// UnmatchedProperties returns the properties of target without rules, each with an empty rule list
func (d *Debugger) UnmatchedProperties(target any) (Classification, error) {
	c, err := d.Classify(target)
	if err != nil {
		return nil, err
	}
	return c.Unmatched(), nil
}

type Report struct {
	Type      string         `json:"type"`
	Matched   Classification `json:"matched"`
	Unmatched Classification `json:"unmatched"`
}

// Inspect returns both views of one classification
func (d *Debugger) Inspect(target any) (Report, error) {
	rules, err := d.FilterRules()
	if err != nil {
		return Report{}, err
	}
	t, err := d.resolve(target)
	if err != nil {
		return Report{}, err
	}
	c := classify(t, rules)
	return Report{
		Type:      typename.Of(t),
		Matched:   c.Matched(),
		Unmatched: c.Unmatched(),
	}, nil
}

func (d *Debugger) resolve(target any) (t reflect.Type, err error) {
	switch v := target.(type) {
	case nil:
		return nil, introspectionErr("target type is nil")
	case string:
		if t, err = d.lookup(v); err != nil {
			return nil, err
		}
	case reflect.Type:
		t = v
	default:
		t = reflect.TypeOf(target)
	}
	t = typename.Indirect(t)
	if t == nil {
		return nil, introspectionErr("target type is nil")
	}
	if t.Kind() != reflect.Struct {
		return nil, introspectionErr("%s is not a struct", t)
	}
	return t, nil
}

func (d *Debugger) lookup(name string) (reflect.Type, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	name = typename.Normalize(name)
	if t, ok := d.types[name]; ok {
		return t, nil
	}
	var found reflect.Type
	for _, t := range d.types {
		if t.Name() != name {
			continue
		}
		if found != nil {
			return nil, introspectionErr("type name %q is ambiguous", name)
		}
		found = t
	}
	if found == nil {
		return nil, introspectionErr("unknown type %q", name)
	}
	return found, nil
}

func classify(t reflect.Type, rules []FilterRule) Classification {
	class := typename.Of(t)
	res := make(Classification, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		property := t.Field(i).Name
		if property == "_" {
			continue
		}
		matched := []FilterRule{}
		for _, rule := range rules {
			if applies(rule, class, property) {
				matched = append(matched, rule)
			}
		}
		res = append(res, PropertyMatch{Property: property, Rules: matched})
	}
	return res
}

func applies(rule FilterRule, class, property string) bool {
	switch r := rule.(type) {
	case PropertyNameRule:
		return r.Property == property
	case ClassPropertyRule:
		return r.Property == property && typename.Equal(r.Class, class)
	default:
		// property type and unrecognized rules never apply
		return false
	}
}
