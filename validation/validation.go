// Package validation checks decoded request payloads against declared
// per-operation rule sets before any store call. Every failed constraint is
// reported, not just the first, as an ordered list of field violations.
package validation

import "math"

// Violation describes a single failed constraint on a payload field. Nested
// fields are reported with a dotted path, e.g. "coordinates.x".
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	msgEmpty   = "Empty value"
	msgInvalid = "Invalid value"
)

type check func(value any) bool

// FieldRules declares the constraints for one payload field. Build with
// Field and the chained modifiers.
type FieldRules struct {
	name     string
	required bool
	checks   []check
	sub      []FieldRules
}

func Field(name string) FieldRules { return FieldRules{name: name} }

// Required fails with "Empty value" when the field is absent, null or an
// empty string.
func (f FieldRules) Required() FieldRules {
	f.required = true
	return f
}

// Optional marks the field as allowed to be absent; chained checks run only
// when a value is present.
func (f FieldRules) Optional() FieldRules { return f }

// Int accepts JSON numbers with no fractional part.
func (f FieldRules) Int() FieldRules {
	f.checks = append(f.checks, isInt)
	return f
}

// Decimal accepts any JSON number.
func (f FieldRules) Decimal() FieldRules {
	f.checks = append(f.checks, isNumber)
	return f
}

// Numeric accepts any JSON number.
func (f FieldRules) Numeric() FieldRules {
	f.checks = append(f.checks, isNumber)
	return f
}

// Object attaches rules for the field's members. They are evaluated only
// when the field itself is present; a present non-object value is a
// violation on the field.
func (f FieldRules) Object(sub ...FieldRules) FieldRules {
	f.sub = append(f.sub, sub...)
	return f
}

// Rules is the declared constraint set for one operation.
type Rules []FieldRules

// Apply evaluates every rule against the payload and returns the complete
// violation list in declaration order. An empty list means valid. Apply
// never mutates the payload.
func (r Rules) Apply(payload map[string]any) []Violation {
	var out []Violation
	for _, f := range r {
		out = append(out, f.apply("", payload)...)
	}
	return out
}

func (f FieldRules) apply(prefix string, payload map[string]any) []Violation {
	name := f.name
	if prefix != "" {
		name = prefix + "." + f.name
	}

	value, present := payload[f.name]
	if !present || value == nil || value == "" {
		if f.required {
			return []Violation{{Field: name, Message: msgEmpty}}
		}
		return nil
	}

	var out []Violation
	for _, c := range f.checks {
		if !c(value) {
			out = append(out, Violation{Field: name, Message: msgInvalid})
		}
	}

	if len(f.sub) > 0 {
		members, ok := value.(map[string]any)
		if !ok {
			out = append(out, Violation{Field: name, Message: msgInvalid})
			return out
		}
		for _, s := range f.sub {
			out = append(out, s.apply(name, members)...)
		}
	}
	return out
}

func isInt(v any) bool {
	n, ok := v.(float64)
	return ok && n == math.Trunc(n)
}

func isNumber(v any) bool {
	_, ok := v.(float64)
	return ok
}
