package copydebug

import (
	"bytes"
	"encoding/json"
)

// PropertyMatch is a property with the rules applying to it, in registration order
type PropertyMatch struct {
	Property string
	Rules    []FilterRule
}

// Classification lists the properties of a type in declaration order
type Classification []PropertyMatch

func (c Classification) Properties() []string {
	names := make([]string, len(c))
	for i, pm := range c {
		names[i] = pm.Property
	}
	return names
}

func (c Classification) Get(property string) (rules []FilterRule, ok bool) {
	for _, pm := range c {
		if pm.Property == property {
			return pm.Rules, true
		}
	}
	return nil, false
}

// Matched returns the properties with at least one rule
func (c Classification) Matched() Classification {
	return c.filter(func(pm PropertyMatch) bool { return len(pm.Rules) > 0 })
}

// Unmatched returns the properties without rules
func (c Classification) Unmatched() Classification {
	return c.filter(func(pm PropertyMatch) bool { return len(pm.Rules) == 0 })
}

func (c Classification) filter(keep func(pm PropertyMatch) bool) Classification {
	res := make(Classification, 0, len(c))
	for _, pm := range c {
		if keep(pm) {
			res = append(res, pm)
		}
	}
	return res
}

// MarshalJSON encodes the classification as an object keeping the property order
func (c Classification) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, 2+len(c)*64))
	enc := json.NewEncoder(buf)
	buf.WriteByte('{')
	for i, pm := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(enc, buf, pm.Property); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		descriptors := make([]RuleDescriptor, len(pm.Rules))
		for j, r := range pm.Rules {
			descriptors[j] = r.Describe()
		}
		if err := encodeValue(enc, buf, descriptors); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeValue writes v to buf through enc without the newline Encode appends
func encodeValue(enc *json.Encoder, buf *bytes.Buffer, v any) error {
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
