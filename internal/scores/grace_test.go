package scores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-score-server/internal/domain"
)

func TestGraceACSRisk_Evaluate(t *testing.T) {
	calc := NewGraceACSRisk()

	tests := []struct {
		name      string
		params    domain.Params
		wantScore int
		wantStage string
	}{
		{
			name: "Low risk presentation",
			params: domain.Params{
				"age":                 60.0,
				"heart_rate":          80.0,
				"systolic_bp":         150.0,
				"creatinine":          0.9,
				"killip_class":        "class_1",
				"cardiac_arrest":      "no",
				"st_deviation":        "no",
				"elevated_biomarkers": "yes",
			},
			// 50 + 9 + 24 + 7 + 0 + 14
			wantScore: 104,
			wantStage: "Low Risk",
		},
		{
			name: "Young patient with normal vitals",
			params: domain.Params{
				"age":                 35.0,
				"heart_rate":          65.0,
				"systolic_bp":         210.0,
				"creatinine":          0.9,
				"killip_class":        "class_1",
				"cardiac_arrest":      "no",
				"st_deviation":        "no",
				"elevated_biomarkers": "no",
			},
			// 0 + 3 + 0 + 7
			wantScore: 10,
			wantStage: "Very Low Risk",
		},
		{
			name: "Cardiogenic shock with arrest",
			params: domain.Params{
				"age":                 80.0,
				"heart_rate":          130.0,
				"systolic_bp":         75.0,
				"creatinine":          2.5,
				"killip_class":        "class_4",
				"cardiac_arrest":      "yes",
				"st_deviation":        "yes",
				"elevated_biomarkers": "yes",
			},
			// 100 + 24 + 58 + 21 + 59 + 39 + 28 + 14
			wantScore: 343,
			wantStage: "Extremely High Risk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Evaluate(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Result)
			assert.Equal(t, tt.wantStage, result.Stage)
			assert.NotEmpty(t, result.Extra["in_hospital_mortality"])
		})
	}
}

func TestGraceACSRisk_FractionalAgePointsTruncate(t *testing.T) {
	calc := NewGraceACSRisk()

	// Age 65 contributes 62.5 points; the total truncates to an integer
	result, err := calc.Evaluate(context.Background(), domain.Params{
		"age":                 65.0,
		"heart_rate":          65.0,
		"systolic_bp":         210.0,
		"creatinine":          0.9,
		"killip_class":        "class_1",
		"cardiac_arrest":      "no",
		"st_deviation":        "no",
		"elevated_biomarkers": "no",
	})
	require.NoError(t, err)
	// 62.5 + 3 + 0 + 7 = 72.5 -> 72
	assert.Equal(t, 72, result.Result)
}
