package copydebug

type RuleKind int

const (
	KindUnrecognized RuleKind = iota
	KindPropertyName
	KindClassProperty
	KindPropertyType
)

func (k RuleKind) String() string {
	switch k {
	case KindPropertyName:
		return "propertyName"
	case KindClassProperty:
		return "classProperty"
	case KindPropertyType:
		return "propertyType"
	default:
		return "unrecognized"
	}
}

// FilterRule is one filter registration of the engine.
// The set of implementations is closed: PropertyNameRule, ClassPropertyRule, PropertyTypeRule and UnrecognizedRule
type FilterRule interface {
	Kind() RuleKind
	Source() Registration
	Describe() RuleDescriptor
	isFilterRule()
}

// Registration holds the fully-qualified type names of the matcher and of the filter (the copy action)
type Registration struct {
	Matcher string
	Filter  string
}

func (r Registration) Source() Registration { return r }

func (Registration) isFilterRule() {}

func (r Registration) describe(kind RuleKind, data map[string]string) RuleDescriptor {
	return RuleDescriptor{
		Kind:        kind.String(),
		Matcher:     r.Matcher,
		MatcherData: data,
		Filter:      r.Filter,
	}
}

// PropertyNameRule matches the property with the given name on any type
type PropertyNameRule struct {
	Registration
	Property string
}

func (r PropertyNameRule) Kind() RuleKind { return KindPropertyName }

func (r PropertyNameRule) Describe() RuleDescriptor {
	return r.describe(r.Kind(), map[string]string{"property": r.Property})
}

// ClassPropertyRule matches the property with the given name declared on the type Class
type ClassPropertyRule struct {
	Registration
	Class    string
	Property string
}

func (r ClassPropertyRule) Kind() RuleKind { return KindClassProperty }

func (r ClassPropertyRule) Describe() RuleDescriptor {
	return r.describe(r.Kind(), map[string]string{"class": r.Class, "property": r.Property})
}

// PropertyTypeRule matches properties by their type. Classification never applies it
type PropertyTypeRule struct {
	Registration
	PropertyType string
}

func (r PropertyTypeRule) Kind() RuleKind { return KindPropertyType }

func (r PropertyTypeRule) Describe() RuleDescriptor {
	return r.describe(r.Kind(), map[string]string{"propertyType": r.PropertyType})
}

// UnrecognizedRule is a registration with a matcher of unknown type. It never matches
type UnrecognizedRule struct {
	Registration
}

func (r UnrecognizedRule) Kind() RuleKind { return KindUnrecognized }

func (r UnrecognizedRule) Describe() RuleDescriptor {
	return r.describe(r.Kind(), map[string]string{})
}

// RuleDescriptor is the uniform description of a rule
type RuleDescriptor struct {
	Kind        string            `json:"kind" yaml:"kind"`
	Matcher     string            `json:"matcher" yaml:"matcher"`
	MatcherData map[string]string `json:"matcherData" yaml:"matcherData"`
	Filter      string            `json:"filter" yaml:"filter"`
}
