package domain

import (
	"encoding/json"
)

// ScoreResult is the uniform output shape shared by every calculator.
// Result holds a numeric score, a string classification, or a structured
// breakdown depending on the calculator.
type ScoreResult struct {
	Result           interface{}
	Unit             string
	Interpretation   string
	Stage            string
	StageDescription string
	Extra            map[string]interface{}
}

// WithExtra attaches a calculator-specific field (e.g. component_scores)
// to the serialized response.
func (r *ScoreResult) WithExtra(key string, value interface{}) *ScoreResult {
	if r.Extra == nil {
		r.Extra = make(map[string]interface{})
	}
	r.Extra[key] = value
	return r
}

// MarshalJSON flattens Extra fields into the top-level response object
func (r *ScoreResult) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"result":            r.Result,
		"unit":              r.Unit,
		"interpretation":    r.Interpretation,
		"stage":             r.Stage,
		"stage_description": r.StageDescription,
	}
	for k, v := range r.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}
