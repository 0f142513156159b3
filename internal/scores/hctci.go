package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// HCTCI implements the Hematopoietic Cell Transplantation-specific
// Comorbidity Index (Sorror 2005), optionally age-adjusted (Sorror 2014).
type HCTCI struct{}

// NewHCTCI creates the HCT-CI calculator
func NewHCTCI() *HCTCI { return &HCTCI{} }

// Definition returns catalog metadata
func (h *HCTCI) Definition() Definition {
	return Definition{
		ID:          "hct_ci",
		Name:        "Hematopoietic Cell Transplantation-specific Comorbidity Index (HCT-CI)",
		Specialty:   "hematology",
		Description: "Predicts non-relapse mortality after allogeneic hematopoietic cell transplantation from pretransplant comorbidities",
	}
}

var hctciYesNoWeights = []struct {
	field  string
	points int
}{
	{"arrhythmia", 1},
	{"cardiac", 1},
	{"inflammatory_bowel_disease", 1},
	{"diabetes", 1},
	{"cerebrovascular_disease", 1},
	{"psychiatric_disturbance", 1},
	{"obesity", 1},
	{"infection", 1},
	{"rheumatologic", 2},
	{"peptic_ulcer", 2},
	{"renal_moderate_severe", 2},
	{"prior_solid_tumor", 3},
	{"heart_valve_disease", 3},
}

var hctciHepaticPoints = map[string]int{
	"none":            0,
	"mild":            1,
	"moderate_severe": 3,
}

var hctciPulmonaryPoints = map[string]int{
	"none":     0,
	"moderate": 2,
	"severe":   3,
}

// Evaluate sums the comorbidity weights, adds the optional age point
// (age >= 40 when include_age is yes), and classifies non-relapse
// mortality risk: 0 low, 1-2 intermediate, >=3 high.
func (h *HCTCI) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	total := 0
	for _, w := range hctciYesNoWeights {
		present, err := params.YesNo(w.field)
		if err != nil {
			return nil, err
		}
		if present {
			total += w.points
		}
	}

	hepatic, err := params.Enum("hepatic", "none", "mild", "moderate_severe")
	if err != nil {
		return nil, err
	}
	total += hctciHepaticPoints[hepatic]

	pulmonary, err := params.Enum("pulmonary", "none", "moderate", "severe")
	if err != nil {
		return nil, err
	}
	total += hctciPulmonaryPoints[pulmonary]

	includeAge, err := params.YesNo("include_age")
	if err != nil {
		return nil, err
	}
	agePoint := 0
	if includeAge {
		age, err := params.Int("age", 0, 120)
		if err != nil {
			return nil, err
		}
		if age >= 40 {
			agePoint = 1
		}
		total += agePoint
	}

	var stage, description, guidance string
	switch {
	case total == 0:
		stage = "Low Risk"
		description = "Low non-relapse mortality risk"
		guidance = "Low risk. 2-year non-relapse mortality approximately 14%. Standard conditioning regimens generally well tolerated."
	case total <= 2:
		stage = "Intermediate Risk"
		description = "Intermediate non-relapse mortality risk"
		guidance = "Intermediate risk. 2-year non-relapse mortality approximately 21%. Weigh conditioning intensity against comorbidity burden."
	default:
		stage = "High Risk"
		description = "High non-relapse mortality risk"
		guidance = "High risk. 2-year non-relapse mortality approximately 41%. Consider reduced-intensity conditioning and intensified supportive care."
	}

	interpretation := fmt.Sprintf("HCT-CI score %d points. %s", total, guidance)

	result := &domain.ScoreResult{
		Result:           total,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("age_point_applied", agePoint == 1)
	return result, nil
}
