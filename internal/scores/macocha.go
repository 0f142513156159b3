package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// MacochaScore implements the MACOCHA score predicting difficult intubation
// in ICU patients (De Jong 2013). Range 0-12 points.
type MacochaScore struct{}

// NewMacochaScore creates the MACOCHA calculator
func NewMacochaScore() *MacochaScore { return &MacochaScore{} }

// Definition returns catalog metadata
func (m *MacochaScore) Definition() Definition {
	return Definition{
		ID:          "macocha_score",
		Name:        "MACOCHA Score",
		Specialty:   "anesthesiology",
		Description: "Predicts difficult intubation in ICU patients from patient, pathology and operator factors",
	}
}

var macochaPatientFactors = []struct {
	field  string
	points int
}{
	{"mallampati_3_or_4", 5},
	{"obstructive_sleep_apnea", 2},
	{"reduced_cervical_mobility", 1},
	{"limited_mouth_opening", 1},
}

var macochaPathologyFactors = []struct {
	field  string
	points int
}{
	{"coma", 1},
	{"severe_hypoxemia", 1},
}

// Evaluate sums the factor points and maps the total through the documented
// risk bands (<=2 low, 3-5 intermediate, >=6 high).
func (m *MacochaScore) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	patientScore := 0
	for _, f := range macochaPatientFactors {
		present, err := params.YesNo(f.field)
		if err != nil {
			return nil, err
		}
		if present {
			patientScore += f.points
		}
	}

	pathologyScore := 0
	for _, f := range macochaPathologyFactors {
		present, err := params.YesNo(f.field)
		if err != nil {
			return nil, err
		}
		if present {
			pathologyScore += f.points
		}
	}

	operatorScore := 0
	nonAnesthesiologist, err := params.YesNo("non_anesthesiologist")
	if err != nil {
		return nil, err
	}
	if nonAnesthesiologist {
		operatorScore = 1
	}

	total := patientScore + pathologyScore + operatorScore

	var stage, description, probability, guidance string
	switch {
	case total <= 2:
		stage = "Low Risk"
		description = "Low risk for difficult intubation"
		probability = "<10%"
		guidance = "Standard intubation preparation with standard laryngoscope and endotracheal tubes. Difficult intubation very unlikely (negative predictive value 98%)."
	case total <= 5:
		stage = "Intermediate Risk"
		description = "Intermediate risk for difficult intubation"
		probability = "10-30%"
		guidance = "Enhanced preparation recommended: video laryngoscope, supraglottic airway device immediately available, experienced intubator, clearly defined backup airway plan."
	default:
		stage = "High Risk"
		description = "High risk for difficult intubation"
		probability = ">30%"
		guidance = "Comprehensive difficult airway preparation mandatory: video laryngoscopy first line, fiberoptic bronchoscope and surgical airway capability immediately available, most experienced operator, strongly consider awake fiberoptic intubation."
	}

	interpretation := fmt.Sprintf(
		"MACOCHA score %d/12 (patient-related %d, pathology-related %d, operator-related %d). Probability of difficult intubation %s. %s",
		total, patientScore, pathologyScore, operatorScore, probability, guidance)

	result := &domain.ScoreResult{
		Result:           total,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("component_scores", map[string]int{
		"patient_factors":   patientScore,
		"pathology_factors": pathologyScore,
		"operator_factors":  operatorScore,
	})
	return result, nil
}
