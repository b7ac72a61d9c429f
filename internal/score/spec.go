package score

import (
	"fmt"
	"slices"
)

// Kind classifies what values a parameter accepts.
type Kind string

const (
	// KindEnum accepts one of a fixed set of string values.
	KindEnum Kind = "enum"
	// KindNumber accepts a numeric value, optionally bounded by Min/Max
	// (inclusive on both ends).
	KindNumber Kind = "number"
	// KindBoolean accepts true or false.
	KindBoolean Kind = "boolean"
	// KindString accepts any string value.
	KindString Kind = "string"
)

// ParamSpec declares one accepted input of a calculator: its type, the values
// it allows, and whether the caller must supply it. Specs are created once at
// registration time and read-only thereafter; the validator and the catalog
// endpoints share them.
type ParamSpec struct {
	Name        string
	Kind        Kind
	Allowed     []string // KindEnum only
	Min, Max    *float64 // KindNumber only; nil means unbounded
	Required    bool
	Default     any // applied when the parameter is absent
	Unit        string
	Description string
}

// F is shorthand for numeric bounds in spec literals.
func F(v float64) *float64 { return &v }

// validate checks the spec itself for registration-time configuration errors.
func (sp ParamSpec) validate() error {
	if sp.Name == "" {
		return fmt.Errorf("parameter spec has empty name")
	}
	switch sp.Kind {
	case KindEnum:
		if len(sp.Allowed) == 0 {
			return fmt.Errorf("parameter %q: enum spec needs allowed values", sp.Name)
		}
	case KindNumber:
		if sp.Min != nil && sp.Max != nil && *sp.Min > *sp.Max {
			return fmt.Errorf("parameter %q: min %v exceeds max %v", sp.Name, *sp.Min, *sp.Max)
		}
	case KindBoolean, KindString:
	default:
		return fmt.Errorf("parameter %q: unknown kind %q", sp.Name, sp.Kind)
	}
	if sp.Default != nil {
		if reason := sp.check(sp.Default); reason != "" {
			return fmt.Errorf("parameter %q: default %v: %s", sp.Name, sp.Default, reason)
		}
	}
	return nil
}

// check tests a supplied value against the constraint. An empty string means
// the value is acceptable; otherwise it is a caller-facing reason.
func (sp ParamSpec) check(v any) string {
	switch sp.Kind {
	case KindEnum:
		s, ok := v.(string)
		if !ok {
			return fmt.Sprintf("must be one of %v, received %v", sp.Allowed, v)
		}
		if !slices.Contains(sp.Allowed, s) {
			return fmt.Sprintf("must be one of %v, received %q", sp.Allowed, s)
		}
	case KindNumber:
		f, ok := toFloat(v)
		if !ok {
			return fmt.Sprintf("must be a number, received %v", v)
		}
		if sp.Min != nil && f < *sp.Min {
			return fmt.Sprintf("must be between %s and %s, received %v", boundStr(sp.Min), boundStr(sp.Max), f)
		}
		if sp.Max != nil && f > *sp.Max {
			return fmt.Sprintf("must be between %s and %s, received %v", boundStr(sp.Min), boundStr(sp.Max), f)
		}
	case KindBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Sprintf("must be a boolean, received %v", v)
		}
	case KindString:
		if _, ok := v.(string); !ok {
			return fmt.Sprintf("must be a string, received %v", v)
		}
	}
	return ""
}

// normalize converts an accepted value to its canonical in-process type
// (numbers become float64 so compute funcs read one representation).
func (sp ParamSpec) normalize(v any) any {
	if sp.Kind == KindNumber {
		f, _ := toFloat(v)
		return f
	}
	return v
}

func boundStr(b *float64) string {
	if b == nil {
		return "unbounded"
	}
	return fmt.Sprintf("%v", *b)
}

// toFloat widens the numeric types a JSON decoder or spec literal can produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
