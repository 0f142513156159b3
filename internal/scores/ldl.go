package scores

import (
	"context"
	"fmt"
	"math"

	"github.com/clinical-score-server/internal/domain"
)

// LDLCalculated implements the Friedewald equation for estimating LDL
// cholesterol from a standard lipid panel.
type LDLCalculated struct{}

// NewLDLCalculated creates the calculated LDL calculator
func NewLDLCalculated() *LDLCalculated { return &LDLCalculated{} }

// Definition returns catalog metadata
func (l *LDLCalculated) Definition() Definition {
	return Definition{
		ID:          "ldl_calculated",
		Name:        "LDL Cholesterol (Calculated, Friedewald)",
		Specialty:   "cardiology",
		Description: "Estimates LDL cholesterol from total cholesterol, HDL and triglycerides using the Friedewald equation",
	}
}

// Evaluate computes LDL = TC - HDL - TG/5 (mg/dL) and classifies the result
// per ATP III categories
func (l *LDLCalculated) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	totalCholesterol, err := params.Float("total_cholesterol", 50, 1000)
	if err != nil {
		return nil, err
	}
	hdl, err := params.Float("hdl_cholesterol", 10, 200)
	if err != nil {
		return nil, err
	}
	triglycerides, err := params.Float("triglycerides", 30, 5000)
	if err != nil {
		return nil, err
	}

	if hdl >= totalCholesterol {
		return nil, domain.NewCalculationError(
			"HDL cholesterol (%g) cannot equal or exceed total cholesterol (%g)", hdl, totalCholesterol)
	}

	ldl := totalCholesterol - hdl - triglycerides/5
	ldl = math.Round(ldl*10) / 10

	var stage, description string
	switch {
	case ldl < 100:
		stage = "Optimal"
		description = "Optimal LDL cholesterol"
	case ldl < 130:
		stage = "Near Optimal"
		description = "Near optimal LDL cholesterol"
	case ldl < 160:
		stage = "Borderline High"
		description = "Borderline high LDL cholesterol"
	case ldl < 190:
		stage = "High"
		description = "High LDL cholesterol"
	default:
		stage = "Very High"
		description = "Very high LDL cholesterol"
	}

	interpretation := fmt.Sprintf(
		"Calculated LDL cholesterol %.1f mg/dL (%s). Treatment targets depend on overall atherosclerotic cardiovascular disease risk.",
		ldl, description)

	accuracyWarning := triglycerides > 400
	if accuracyWarning {
		interpretation += " Triglycerides exceed 400 mg/dL; the Friedewald estimate is unreliable and a direct LDL measurement is recommended."
	}

	result := &domain.ScoreResult{
		Result:           ldl,
		Unit:             "mg/dL",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("accuracy_warning", accuracyWarning)
	return result, nil
}
