package scores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-score-server/internal/domain"
)

func villaltaParams(symptomGrade, signGrade int, ulcer string) domain.Params {
	params := domain.Params{"venous_ulcer_present": ulcer}
	for _, f := range villaltaSymptomFields {
		params[f] = float64(symptomGrade)
	}
	for _, f := range villaltaSignFields {
		params[f] = float64(signGrade)
	}
	return params
}

func TestVillaltaScore_Evaluate(t *testing.T) {
	calc := NewVillaltaScore()

	tests := []struct {
		name      string
		params    domain.Params
		wantScore int
		wantStage string
		wantUlcer bool
	}{
		{
			name:      "All zeros without ulcer",
			params:    villaltaParams(0, 0, "no"),
			wantScore: 0,
			wantStage: "No PTS",
		},
		{
			name:      "Mild band",
			params:    villaltaParams(1, 0, "no"),
			wantScore: 5,
			wantStage: "Mild PTS",
		},
		{
			name:      "Moderate band",
			params:    villaltaParams(2, 0, "no"),
			wantScore: 10,
			wantStage: "Moderate PTS",
		},
		{
			name:      "Maximum score",
			params:    villaltaParams(3, 3, "no"),
			wantScore: 33,
			wantStage: "Severe PTS",
		},
		{
			name:      "Ulcer overrides a low point total",
			params:    villaltaParams(0, 0, "yes"),
			wantScore: 0,
			wantStage: "Severe PTS",
			wantUlcer: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Evaluate(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Result)
			assert.Equal(t, tt.wantStage, result.Stage)
			assert.Equal(t, tt.wantUlcer, result.Extra["ulcer_adjustment_applied"])
		})
	}
}

func TestVillaltaScore_GradeBounds(t *testing.T) {
	calc := NewVillaltaScore()

	params := villaltaParams(0, 0, "no")
	params["pain"] = 4.0
	_, err := calc.Evaluate(context.Background(), params)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "pain", vErr.Field)
}
