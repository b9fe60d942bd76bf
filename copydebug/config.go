package copydebug

import (
	"github.com/anyproto/any-copydebug/copier"
	"github.com/anyproto/any-copydebug/util/typename"
)

// Config describes the internal layout of the deep-copy engine.
// Empty values fall back to the layout of the copier package
type Config struct {
	FiltersField string        `yaml:"filtersField"`
	MatcherField string        `yaml:"matcherField"`
	FilterField  string        `yaml:"filterField"`
	Matchers     MatcherTypes  `yaml:"matchers"`
	Fields       MatcherFields `yaml:"fields"`
}

// MatcherTypes holds the fully-qualified type names of the recognized matchers, see typename.Of
type MatcherTypes struct {
	PropertyName  string `yaml:"propertyName"`
	ClassProperty string `yaml:"classProperty"`
	PropertyType  string `yaml:"propertyType"`
}

// MatcherFields holds the names of the matcher fields carrying the rule data
type MatcherFields struct {
	Property     string `yaml:"property"`
	Class        string `yaml:"class"`
	PropertyType string `yaml:"propertyType"`
}

func DefaultConfig() Config {
	return Config{
		FiltersField: "filters",
		MatcherField: "matcher",
		FilterField:  "filter",
		Matchers: MatcherTypes{
			PropertyName:  typename.OfValue(copier.PropertyNameMatcher{}),
			ClassProperty: typename.OfValue(copier.PropertyMatcher{}),
			PropertyType:  typename.OfValue(copier.PropertyTypeMatcher{}),
		},
		Fields: MatcherFields{
			Property:     "property",
			Class:        "class",
			PropertyType: "propertyType",
		},
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	or := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	or(&c.FiltersField, def.FiltersField)
	or(&c.MatcherField, def.MatcherField)
	or(&c.FilterField, def.FilterField)
	or(&c.Matchers.PropertyName, def.Matchers.PropertyName)
	or(&c.Matchers.ClassProperty, def.Matchers.ClassProperty)
	or(&c.Matchers.PropertyType, def.Matchers.PropertyType)
	or(&c.Fields.Property, def.Fields.Property)
	or(&c.Fields.Class, def.Fields.Class)
	or(&c.Fields.PropertyType, def.Fields.PropertyType)
	return c
}
