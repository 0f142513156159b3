package scores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-score-server/internal/domain"
)

func esusParams(overrides map[string]string) domain.Params {
	params := domain.Params{}
	for _, f := range esusClinicalCriteria {
		params[f] = "yes"
	}
	for _, f := range esusEvaluationCriteria {
		params[f] = "yes"
	}
	for k, v := range overrides {
		params[k] = v
	}
	return params
}

func TestEsusCriteria_Evaluate(t *testing.T) {
	calc := NewEsusCriteria()

	tests := []struct {
		name       string
		overrides  map[string]string
		wantResult string
	}{
		{
			name:       "All criteria met",
			overrides:  nil,
			wantResult: "ESUS Diagnosis Confirmed",
		},
		{
			name: "Incomplete workup dominates clinical findings",
			overrides: map[string]string{
				"adequate_cardiac_monitoring": "no",
			},
			wantResult: "Inadequate Evaluation",
		},
		{
			name: "Identified mechanism rules out ESUS",
			overrides: map[string]string{
				"no_major_cardioembolic_source": "no",
			},
			wantResult: "ESUS Diagnosis Not Met",
		},
		{
			name: "Lacunar stroke rules out ESUS",
			overrides: map[string]string{
				"stroke_type_non_lacunar": "no",
			},
			wantResult: "ESUS Diagnosis Not Met",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Evaluate(context.Background(), esusParams(tt.overrides))
			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, result.Result)
			assert.Equal(t, tt.wantResult, result.Stage)
		})
	}
}

func TestEsusCriteria_MissingField(t *testing.T) {
	calc := NewEsusCriteria()

	params := esusParams(nil)
	delete(params, "adequate_vascular_imaging")
	_, err := calc.Evaluate(context.Background(), params)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "adequate_vascular_imaging", vErr.Field)
}
