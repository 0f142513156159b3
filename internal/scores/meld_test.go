package scores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-score-server/internal/domain"
)

func TestMeldCombined_Original(t *testing.T) {
	calc := NewMeldCombined()

	tests := []struct {
		name      string
		params    domain.Params
		wantScore int
		wantStage string
	}{
		{
			name: "Moderate disease",
			params: domain.Params{
				"meld_version": "original",
				"bilirubin":    2.5,
				"creatinine":   1.2,
				"inr":          1.5,
			},
			// 3.78*ln(2.5) + 9.57*ln(1.2) + 11.2*ln(1.5) + 6.43
			wantScore: 16,
			wantStage: "Severe Disease",
		},
		{
			name: "Normal labs clamp to floor of six",
			params: domain.Params{
				"meld_version": "original",
				"bilirubin":    0.5,
				"creatinine":   0.8,
				"inr":          0.9,
			},
			wantScore: 6,
			wantStage: "Mild Disease",
		},
		{
			name: "Extreme labs clamp to ceiling of forty",
			params: domain.Params{
				"meld_version": "original",
				"bilirubin":    45.0,
				"creatinine":   12.0,
				"inr":          9.0,
			},
			wantScore: 40,
			wantStage: "Critical Disease",
		},
		{
			name: "Dialysis sets creatinine to ceiling",
			params: domain.Params{
				"meld_version":           "original",
				"bilirubin":              2.5,
				"creatinine":             1.2,
				"inr":                    1.5,
				"dialysis_twice_in_week": "yes",
			},
			// creatinine treated as 4.0: adds 9.57*ln(4.0/1.2) to the base score
			wantScore: 28,
			wantStage: "Very Severe Disease",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Evaluate(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Result)
			assert.Equal(t, tt.wantStage, result.Stage)
			assert.GreaterOrEqual(t, result.Result.(int), 6)
			assert.LessOrEqual(t, result.Result.(int), 40)
		})
	}
}

func TestMeldCombined_MeldNa(t *testing.T) {
	calc := NewMeldCombined()

	// Base MELD 16 with hyponatremia gains sodium points
	result, err := calc.Evaluate(context.Background(), domain.Params{
		"meld_version": "meld_na",
		"bilirubin":    2.5,
		"creatinine":   1.2,
		"inr":          1.5,
		"sodium":       128.0,
	})
	require.NoError(t, err)
	// 16 + 1.32*9 - 0.033*16*9 = 23.1
	assert.Equal(t, 23, result.Result)

	// Below MELD 11 the sodium adjustment does not apply
	result, err = calc.Evaluate(context.Background(), domain.Params{
		"meld_version": "meld_na",
		"bilirubin":    1.0,
		"creatinine":   1.0,
		"inr":          1.0,
		"sodium":       128.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, result.Result)
}

func TestMeldCombined_Meld30(t *testing.T) {
	calc := NewMeldCombined()

	male, err := calc.Evaluate(context.Background(), domain.Params{
		"meld_version": "meld_3_0",
		"bilirubin":    2.5,
		"creatinine":   1.2,
		"inr":          1.5,
		"sodium":       130.0,
		"albumin":      2.8,
		"age":          55.0,
		"sex":          "male",
	})
	require.NoError(t, err)

	female, err := calc.Evaluate(context.Background(), domain.Params{
		"meld_version": "meld_3_0",
		"bilirubin":    2.5,
		"creatinine":   1.2,
		"inr":          1.5,
		"sodium":       130.0,
		"albumin":      2.8,
		"age":          55.0,
		"sex":          "female",
	})
	require.NoError(t, err)

	// The female coefficient raises the score for identical labs
	assert.Greater(t, female.Result.(int), male.Result.(int))
}

func TestMeldCombined_VersionSpecificFields(t *testing.T) {
	calc := NewMeldCombined()

	base := domain.Params{
		"bilirubin":  2.5,
		"creatinine": 1.2,
		"inr":        1.5,
	}

	tests := []struct {
		name      string
		version   string
		extra     domain.Params
		wantField string
	}{
		{
			name:      "MELD-Na requires sodium",
			version:   "meld_na",
			wantField: "sodium",
		},
		{
			name:      "MELD 3.0 requires albumin",
			version:   "meld_3_0",
			extra:     domain.Params{"sodium": 130.0},
			wantField: "albumin",
		},
		{
			name:      "MELD 3.0 requires age",
			version:   "meld_3_0",
			extra:     domain.Params{"sodium": 130.0, "albumin": 2.8},
			wantField: "age",
		},
		{
			name:      "MELD 3.0 requires sex",
			version:   "meld_3_0",
			extra:     domain.Params{"sodium": 130.0, "albumin": 2.8, "age": 55.0},
			wantField: "sex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := domain.Params{"meld_version": tt.version}
			for k, v := range base {
				params[k] = v
			}
			for k, v := range tt.extra {
				params[k] = v
			}

			_, err := calc.Evaluate(context.Background(), params)
			require.Error(t, err)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}

	// Original version needs none of the extras
	params := domain.Params{"meld_version": "original"}
	for k, v := range base {
		params[k] = v
	}
	_, err := calc.Evaluate(context.Background(), params)
	assert.NoError(t, err)
}
