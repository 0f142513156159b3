package domain

import (
	"fmt"
	"math"
	"strings"
)

// Params is the raw parameter bag decoded from a calculation request body.
// Accessors perform per-field validation and return *ValidationError so the
// HTTP layer can surface field-level detail.
type Params map[string]interface{}

// Enum returns the value of a required enumerated string field
func (p Params) Enum(field string, allowed ...string) (string, error) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return "", NewValidationError(field, "field is required", nil)
	}
	s, ok := raw.(string)
	if !ok {
		return "", NewValidationError(field, "must be a string", raw)
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", NewValidationError(field,
		fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")), s)
}

// OptionalEnum returns an enumerated string field if present
func (p Params) OptionalEnum(field string, allowed ...string) (string, bool, error) {
	if raw, ok := p[field]; !ok || raw == nil {
		return "", false, nil
	}
	s, err := p.Enum(field, allowed...)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// YesNo returns true when a required yes/no field is "yes"
func (p Params) YesNo(field string) (bool, error) {
	s, err := p.Enum(field, "yes", "no")
	if err != nil {
		return false, err
	}
	return s == "yes", nil
}

// OptionalYesNo returns a yes/no field if present, defaulting to "no"
func (p Params) OptionalYesNo(field string) (bool, error) {
	if raw, ok := p[field]; !ok || raw == nil {
		return false, nil
	}
	return p.YesNo(field)
}

// Float returns a required bounded numeric field
func (p Params) Float(field string, min, max float64) (float64, error) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return 0, NewValidationError(field, "field is required", nil)
	}
	f, ok := toFloat(raw)
	if !ok {
		return 0, NewValidationError(field, "must be a number", raw)
	}
	if f < min || f > max {
		return 0, NewValidationError(field,
			fmt.Sprintf("must be between %g and %g", min, max), f)
	}
	return f, nil
}

// OptionalFloat returns a bounded numeric field if present
func (p Params) OptionalFloat(field string, min, max float64) (float64, bool, error) {
	if raw, ok := p[field]; !ok || raw == nil {
		return 0, false, nil
	}
	f, err := p.Float(field, min, max)
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}

// Int returns a required bounded integer field. JSON numbers arrive as
// float64; fractional values are rejected rather than truncated.
func (p Params) Int(field string, min, max int) (int, error) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return 0, NewValidationError(field, "field is required", nil)
	}
	f, ok := toFloat(raw)
	if !ok || f != math.Trunc(f) {
		return 0, NewValidationError(field, "must be an integer", raw)
	}
	n := int(f)
	if n < min || n > max {
		return 0, NewValidationError(field,
			fmt.Sprintf("must be between %d and %d", min, max), n)
	}
	return n, nil
}

// OptionalInt returns a bounded integer field if present
func (p Params) OptionalInt(field string, min, max int) (int, bool, error) {
	if raw, ok := p[field]; !ok || raw == nil {
		return 0, false, nil
	}
	n, err := p.Int(field, min, max)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
