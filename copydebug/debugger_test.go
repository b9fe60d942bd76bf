package copydebug

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-copydebug/app/logger"
	"github.com/anyproto/any-copydebug/copier"
	"github.com/anyproto/any-copydebug/util/typename"
)

type Order struct {
	id        int
	createdAt time.Time
	total     float64
}

type Invoice struct {
	total float64
}

type Empty struct{}

type lineItem struct {
	Order
	sku string
	_   int
}

// auditMatcher is a matcher kind the debugger does not know
type auditMatcher struct {
	property string
}

func (m auditMatcher) Matches(_ reflect.Type, field reflect.StructField) bool {
	return field.Name == m.property
}

const (
	copierPkg = "github.com/anyproto/any-copydebug/copier"
	selfPkg   = "github.com/anyproto/any-copydebug/copydebug"
)

func reg(matcher, filter string) Registration {
	return Registration{Matcher: copierPkg + "." + matcher, Filter: copierPkg + "." + filter}
}

func TestDebugger_FilterRules(t *testing.T) {
	engine := copier.New().
		AddFilter(copier.SetZeroFilter{}, copier.NewPropertyNameMatcher("createdAt")).
		AddFilter(copier.KeepFilter{}, copier.NewPropertyMatcherFor(Order{}, "total")).
		AddFilter(copier.NewReplaceFilter(func(v any) any { return v }), copier.NewPropertyTypeMatcherFor(time.Time{})).
		AddFilter(&copier.SetZeroFilter{}, auditMatcher{property: "id"})

	rules, err := New(engine, Config{}).FilterRules()
	require.NoError(t, err)
	assert.Equal(t, []FilterRule{
		PropertyNameRule{Registration: reg("PropertyNameMatcher", "SetZeroFilter"), Property: "createdAt"},
		ClassPropertyRule{Registration: reg("PropertyMatcher", "KeepFilter"), Class: selfPkg + ".Order", Property: "total"},
		PropertyTypeRule{Registration: reg("PropertyTypeMatcher", "ReplaceFilter"), PropertyType: "time.Time"},
		UnrecognizedRule{Registration: Registration{Matcher: selfPkg + ".auditMatcher", Filter: copierPkg + ".SetZeroFilter"}},
	}, rules)

	assert.Equal(t, RuleDescriptor{
		Kind:        "classProperty",
		Matcher:     copierPkg + ".PropertyMatcher",
		MatcherData: map[string]string{"class": selfPkg + ".Order", "property": "total"},
		Filter:      copierPkg + ".KeepFilter",
	}, rules[1].Describe())
	assert.Equal(t, KindUnrecognized, rules[3].Kind())
	assert.Empty(t, rules[3].Describe().MatcherData)

	t.Run("engine is not modified", func(t *testing.T) {
		again, err := New(engine, Config{}).FilterRules()
		require.NoError(t, err)
		assert.Equal(t, rules, again)
	})
}

func TestDebugger_Classify(t *testing.T) {
	t.Run("property name", func(t *testing.T) {
		engine := copier.New().AddFilter(copier.SetZeroFilter{}, copier.NewPropertyNameMatcher("createdAt"))
		d := New(engine, Config{})
		rule := PropertyNameRule{Registration: reg("PropertyNameMatcher", "SetZeroFilter"), Property: "createdAt"}

		matched, err := d.MatchedProperties(Order{})
		require.NoError(t, err)
		assert.Equal(t, Classification{{Property: "createdAt", Rules: []FilterRule{rule}}}, matched)

		unmatched, err := d.UnmatchedProperties(Order{})
		require.NoError(t, err)
		assert.Equal(t, Classification{
			{Property: "id", Rules: []FilterRule{}},
			{Property: "total", Rules: []FilterRule{}},
		}, unmatched)
	})
	t.Run("property name applies to any type", func(t *testing.T) {
		engine := copier.New().AddFilter(copier.SetZeroFilter{}, copier.NewPropertyNameMatcher("total"))
		d := New(engine, Config{})
		for _, target := range []any{Order{}, Invoice{}} {
			c, err := d.Classify(target)
			require.NoError(t, err)
			rules, ok := c.Get("total")
			require.True(t, ok)
			assert.Len(t, rules, 1)
		}
	})
	t.Run("class and property", func(t *testing.T) {
		engine := copier.New().AddFilter(copier.KeepFilter{}, copier.NewPropertyMatcherFor(Order{}, "total"))
		d := New(engine, Config{})

		orderMatched, err := d.MatchedProperties(&Order{})
		require.NoError(t, err)
		assert.Equal(t, []string{"total"}, orderMatched.Properties())

		invoiceMatched, err := d.MatchedProperties(Invoice{})
		require.NoError(t, err)
		assert.Empty(t, invoiceMatched)
		invoiceUnmatched, err := d.UnmatchedProperties(Invoice{})
		require.NoError(t, err)
		assert.Equal(t, []string{"total"}, invoiceUnmatched.Properties())
	})
	t.Run("class name is normalized", func(t *testing.T) {
		engine := copier.New().AddFilter(copier.KeepFilter{}, copier.NewPropertyMatcher(" *"+selfPkg+".Order", "id"))
		c, err := New(engine, Config{}).MatchedProperties(Order{})
		require.NoError(t, err)
		assert.Equal(t, []string{"id"}, c.Properties())
	})
	t.Run("property type and unrecognized never apply", func(t *testing.T) {
		engine := copier.New().
			AddFilter(copier.SetZeroFilter{}, copier.NewPropertyTypeMatcherFor(time.Time{})).
			AddFilter(copier.SetZeroFilter{}, auditMatcher{property: "id"})
		c, err := New(engine, Config{}).Classify(Order{})
		require.NoError(t, err)
		assert.Empty(t, c.Matched())
		assert.Len(t, c.Unmatched(), 3)
	})
	t.Run("rules keep registration order", func(t *testing.T) {
		engine := copier.New().
			AddFilter(copier.KeepFilter{}, copier.NewPropertyMatcherFor(Order{}, "id")).
			AddFilter(copier.SetZeroFilter{}, copier.NewPropertyNameMatcher("id"))
		c, err := New(engine, Config{}).Classify(Order{})
		require.NoError(t, err)
		rules, _ := c.Get("id")
		require.Len(t, rules, 2)
		assert.Equal(t, KindClassProperty, rules[0].Kind())
		assert.Equal(t, KindPropertyName, rules[1].Kind())
	})
	t.Run("empty type", func(t *testing.T) {
		engine := copier.New().AddFilter(copier.SetZeroFilter{}, copier.NewPropertyNameMatcher("id"))
		c, err := New(engine, Config{}).Classify(Empty{})
		require.NoError(t, err)
		assert.Empty(t, c)
	})
	t.Run("no filters", func(t *testing.T) {
		c, err := New(copier.New(), Config{}).Classify(Order{})
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "createdAt", "total"}, c.Unmatched().Properties())
		assert.Empty(t, c.Matched())
	})
	t.Run("embedded type is one property", func(t *testing.T) {
		c, err := New(copier.New(), Config{}).Classify(lineItem{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Order", "sku"}, c.Properties())
	})
}

func TestDebugger_Partition(t *testing.T) {
	engine := copier.New().
		AddFilter(copier.SetZeroFilter{}, copier.NewPropertyNameMatcher("createdAt")).
		AddFilter(copier.KeepFilter{}, copier.NewPropertyMatcherFor(Invoice{}, "total")).
		AddFilter(copier.SetZeroFilter{}, auditMatcher{property: "id"})
	d := New(engine, Config{})

	for _, target := range []any{Order{}, Invoice{}, Empty{}, lineItem{}} {
		all, err := d.Classify(target)
		require.NoError(t, err)
		again, err := d.Classify(target)
		require.NoError(t, err)
		assert.Equal(t, all, again)

		matched, err := d.MatchedProperties(target)
		require.NoError(t, err)
		unmatched, err := d.UnmatchedProperties(target)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, name := range append(matched.Properties(), unmatched.Properties()...) {
			assert.False(t, seen[name], name)
			seen[name] = true
		}
		assert.Len(t, seen, len(all))
		for _, name := range all.Properties() {
			assert.True(t, seen[name], name)
		}
	}
}

func TestDebugger_resolve(t *testing.T) {
	d := New(copier.New(), Config{})
	d.RegisterTypes(Order{}, (*Invoice)(nil), Config{}, logger.Config{})

	for _, target := range []any{
		"Order",
		selfPkg + ".Order",
		"*" + selfPkg + ".Order",
		reflect.TypeOf(Order{}),
		&Order{},
	} {
		c, err := d.Classify(target)
		require.NoError(t, err, target)
		assert.Len(t, c, 3)
	}

	c, err := d.Classify("Invoice")
	require.NoError(t, err)
	assert.Equal(t, []string{"total"}, c.Properties())

	for _, target := range []any{nil, "Unknown", "Config", 42, []string{}} {
		_, err := d.Classify(target)
		assert.ErrorIs(t, err, ErrIntrospection, target)
	}
}

type fakeEntry struct {
	matcher any
	filter  any
}

type fakeEngine struct {
	filters []fakeEntry
}

// PropertyNameMatcher and PropertyMatcher share the names of the copier matchers but not their layout
type PropertyNameMatcher struct {
	name string
}

type PropertyMatcher struct {
	class    int
	property string
}

func (m PropertyNameMatcher) Matches(_ reflect.Type, field reflect.StructField) bool {
	return field.Name == m.name
}

func (m PropertyMatcher) Matches(_ reflect.Type, field reflect.StructField) bool {
	return field.Name == m.property
}

// localMatchers points the recognized kinds at the look-alike matchers of this package
var localMatchers = Config{Matchers: MatcherTypes{
	PropertyName:  selfPkg + ".PropertyNameMatcher",
	ClassProperty: selfPkg + ".PropertyMatcher",
}}

func TestDebugger_FilterRulesErrors(t *testing.T) {
	tests := []struct {
		name   string
		engine any
		conf   Config
	}{
		{"nil engine", nil, Config{}},
		{"nil pointer engine", (*copier.Copier)(nil), Config{}},
		{"not a struct", 42, Config{}},
		{"no filter list", struct{ rules []fakeEntry }{}, Config{}},
		{"filter list is not a list", struct{ filters map[string]fakeEntry }{}, Config{}},
		{"registration is not a struct", struct{ filters []int }{filters: []int{1}}, Config{}},
		{"registration is nil", struct{ filters []*fakeEntry }{filters: []*fakeEntry{nil}}, Config{}},
		{"no matcher field", struct{ filters []struct{ filter any } }{filters: []struct{ filter any }{{filter: copier.KeepFilter{}}}}, Config{}},
		{"nil matcher", fakeEngine{filters: []fakeEntry{{filter: copier.KeepFilter{}}}}, Config{}},
		{"nil filter", fakeEngine{filters: []fakeEntry{{matcher: copier.NewPropertyNameMatcher("id")}}}, Config{}},
		{"missing matcher field", fakeEngine{filters: []fakeEntry{{matcher: PropertyNameMatcher{}, filter: copier.KeepFilter{}}}}, localMatchers},
		{"matcher field is not a string", fakeEngine{filters: []fakeEntry{{matcher: &PropertyMatcher{}, filter: copier.KeepFilter{}}}}, localMatchers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.engine, tt.conf)
			_, err := d.FilterRules()
			assert.ErrorIs(t, err, ErrIntrospection)
			_, err = d.Classify(Order{})
			assert.ErrorIs(t, err, ErrIntrospection)
		})
	}
}

func TestDebugger_SameNamedMatcher(t *testing.T) {
	engine := copier.New().
		AddFilter(copier.SetZeroFilter{}, copier.NewPropertyNameMatcher("createdAt")).
		AddFilter(copier.KeepFilter{}, PropertyMatcher{property: "total"}).
		AddFilter(copier.KeepFilter{}, &PropertyNameMatcher{name: "id"})
	d := New(engine, Config{})

	rules, err := d.FilterRules()
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, KindPropertyName, rules[0].Kind())
	assert.Equal(t, UnrecognizedRule{Registration: Registration{
		Matcher: selfPkg + ".PropertyMatcher",
		Filter:  copierPkg + ".KeepFilter",
	}}, rules[1])
	assert.Equal(t, KindUnrecognized, rules[2].Kind())

	c, err := d.Classify(Order{})
	require.NoError(t, err)
	assert.Equal(t, []string{"createdAt"}, c.Matched().Properties())
	assert.Equal(t, []string{"id", "total"}, c.Unmatched().Properties())
}

type legacyMatcher struct {
	field string
}

type legacyEngine struct {
	rules []struct {
		m any
		a any
	}
}

func TestDebugger_Config(t *testing.T) {
	engine := &legacyEngine{}
	engine.rules = append(engine.rules, struct {
		m any
		a any
	}{m: legacyMatcher{field: "total"}, a: copier.KeepFilter{}})

	d := New(engine, Config{
		FiltersField: "rules",
		MatcherField: "m",
		FilterField:  "a",
		Matchers:     MatcherTypes{PropertyName: typename.OfValue(legacyMatcher{})},
		Fields:       MatcherFields{Property: "field"},
	})
	matched, err := d.MatchedProperties(Invoice{})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	rules, _ := matched.Get("total")
	assert.Equal(t, PropertyNameRule{
		Registration: Registration{Matcher: typename.OfValue(legacyMatcher{}), Filter: copierPkg + ".KeepFilter"},
		Property:     "total",
	}, rules[0])
}

func TestDebugger_Inspect(t *testing.T) {
	engine := copier.New().AddFilter(copier.SetZeroFilter{}, copier.NewPropertyNameMatcher("createdAt"))
	report, err := New(engine, Config{}).Inspect(&Order{})
	require.NoError(t, err)
	assert.Equal(t, selfPkg+".Order", report.Type)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "`+selfPkg+`.Order",
		"matched": {"createdAt": [{
			"kind": "propertyName",
			"matcher": "`+copierPkg+`.PropertyNameMatcher",
			"matcherData": {"property": "createdAt"},
			"filter": "`+copierPkg+`.SetZeroFilter"
		}]},
		"unmatched": {"id": [], "total": []}
	}`, string(data))
}

func TestClassification_MarshalJSON(t *testing.T) {
	c := Classification{
		{Property: "zeta", Rules: []FilterRule{}},
		{Property: "alpha", Rules: []FilterRule{}},
	}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":[],"alpha":[]}`, string(data))
}

func TestClassification_MarshalJSONEscaping(t *testing.T) {
	rule := PropertyNameRule{
		Registration: Registration{Matcher: copierPkg + ".PropertyNameMatcher", Filter: copierPkg + ".KeepFilter"},
		Property:     `a"<b>`,
	}
	c := Classification{
		{Property: `a"<b>`, Rules: []FilterRule{rule}},
		{Property: "id", Rules: []FilterRule{}},
	}
	data, err := c.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"a\"\u003cb\u003e":[{"kind":"propertyName","matcher":"`+copierPkg+`.PropertyNameMatcher",`+
		`"matcherData":{"property":"a\"\u003cb\u003e"},"filter":"`+copierPkg+`.KeepFilter"}],"id":[]}`, string(data))
	assert.True(t, json.Valid(data))

	empty, err := Classification{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}
