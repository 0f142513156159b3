package scores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-score-server/internal/domain"
)

func impedeParams(overrides map[string]interface{}) domain.Params {
	params := domain.Params{"dexamethasone_use": "none"}
	for _, w := range impedeYesNoWeights {
		params[w.field] = "no"
	}
	for k, v := range overrides {
		params[k] = v
	}
	return params
}

func TestImpedeVTE_Evaluate(t *testing.T) {
	calc := NewImpedeVTE()

	tests := []struct {
		name      string
		overrides map[string]interface{}
		wantScore int
		wantStage string
	}{
		{
			name: "IMiD plus elevated BMI lands intermediate",
			overrides: map[string]interface{}{
				"immunomodulatory_drug": "yes",
				"bmi_25_or_greater":     "yes",
			},
			wantScore: 5,
			wantStage: "Intermediate Risk",
		},
		{
			name:      "No risk factors",
			overrides: nil,
			wantScore: 0,
			wantStage: "Low Risk",
		},
		{
			name: "Protective factors can push the score negative",
			overrides: map[string]interface{}{
				"asian_pacific_islander":      "yes",
				"therapeutic_anticoagulation": "yes",
			},
			wantScore: -7,
			wantStage: "Low Risk",
		},
		{
			name: "High dose dexamethasone with VTE history is high risk",
			overrides: map[string]interface{}{
				"history_of_vte":        "yes",
				"dexamethasone_use":     "high_dose",
				"immunomodulatory_drug": "yes",
			},
			wantScore: 13,
			wantStage: "High Risk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Evaluate(context.Background(), impedeParams(tt.overrides))
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Result)
			assert.Equal(t, tt.wantStage, result.Stage)
		})
	}
}

func TestImpedeVTE_InvalidDexamethasone(t *testing.T) {
	calc := NewImpedeVTE()
	_, err := calc.Evaluate(context.Background(), impedeParams(map[string]interface{}{
		"dexamethasone_use": "mega_dose",
	}))
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "dexamethasone_use", vErr.Field)
}
