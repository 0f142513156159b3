package scores

import (
	"context"
	"fmt"
	"math"

	"github.com/clinical-score-server/internal/domain"
)

// WintersFormula implements Winters' formula for expected respiratory
// compensation in metabolic acidosis: expected pCO2 = 1.5 x HCO3 + 8 +/- 2.
type WintersFormula struct{}

// NewWintersFormula creates the Winters formula calculator
func NewWintersFormula() *WintersFormula { return &WintersFormula{} }

// Definition returns catalog metadata
func (w *WintersFormula) Definition() Definition {
	return Definition{
		ID:          "winters_formula_metabolic_acidosis",
		Name:        "Winters' Formula for Metabolic Acidosis Compensation",
		Specialty:   "nephrology",
		Description: "Calculates expected pCO2 compensation in metabolic acidosis and flags concurrent respiratory disorders",
	}
}

// Evaluate computes the expected pCO2 and, when a measured pCO2 is supplied,
// compares it against the expected range
func (w *WintersFormula) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	bicarbonate, err := params.Float("bicarbonate", 5, 35)
	if err != nil {
		return nil, err
	}
	measured, measuredSet, err := params.OptionalFloat("measured_pco2", 10, 80)
	if err != nil {
		return nil, err
	}

	expected := 1.5*bicarbonate + 8
	lower := math.Round((expected-2)*10) / 10
	upper := math.Round((expected+2)*10) / 10
	expected = math.Round(expected*10) / 10

	var stage, description, interpretation string
	switch {
	case !measuredSet:
		stage = "Expected Compensation"
		description = "Calculated expected respiratory compensation"
		interpretation = fmt.Sprintf(
			"Expected pCO2 for this degree of metabolic acidosis is %.1f mmHg (acceptable range %.1f-%.1f mmHg). Obtain an arterial blood gas to measure the actual pCO2 and assess compensation adequacy.",
			expected, lower, upper)
	case measured > upper:
		stage = "Undercompensation"
		description = "Inadequate respiratory compensation"
		interpretation = fmt.Sprintf(
			"Measured pCO2 %.1f mmHg exceeds the expected range %.1f-%.1f mmHg, suggesting inadequate respiratory compensation. This may indicate respiratory impairment or a concurrent primary respiratory acidosis.",
			measured, lower, upper)
	case measured < lower:
		stage = "Overcompensation"
		description = "Respiratory overcompensation"
		interpretation = fmt.Sprintf(
			"Measured pCO2 %.1f mmHg is below the expected range %.1f-%.1f mmHg, suggesting respiratory overcompensation. This may indicate a concurrent primary respiratory alkalosis or mixed acid-base disorder.",
			measured, lower, upper)
	default:
		stage = "Appropriate Compensation"
		description = "Expected respiratory compensation"
		interpretation = fmt.Sprintf(
			"Measured pCO2 %.1f mmHg falls within the expected range %.1f-%.1f mmHg, indicating appropriate respiratory compensation. Focus on identifying and treating the underlying cause of metabolic acidosis.",
			measured, lower, upper)
	}

	result := &domain.ScoreResult{
		Result:           expected,
		Unit:             "mmHg",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("expected_range", map[string]float64{
		"lower": lower,
		"upper": upper,
	})
	return result, nil
}
