package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// ImpedeVTE implements the IMPEDE-VTE score predicting venous
// thromboembolism risk in multiple myeloma patients on treatment
// (Sanfilippo 2019).
type ImpedeVTE struct{}

// NewImpedeVTE creates the IMPEDE-VTE calculator
func NewImpedeVTE() *ImpedeVTE { return &ImpedeVTE{} }

// Definition returns catalog metadata
func (i *ImpedeVTE) Definition() Definition {
	return Definition{
		ID:          "impede_vte",
		Name:        "IMPEDE-VTE Score",
		Specialty:   "hematology",
		Description: "Predicts venous thromboembolism risk in multiple myeloma patients receiving treatment",
	}
}

var impedeYesNoWeights = []struct {
	field  string
	points int
}{
	{"immunomodulatory_drug", 4},
	{"bmi_25_or_greater", 1},
	{"pelvic_hip_femur_fracture", 4},
	{"erythropoiesis_stimulating_agent", 1},
	{"doxorubicin_use", 3},
	{"asian_pacific_islander", -3},
	{"history_of_vte", 5},
	{"tunneled_line_cvc", 2},
	{"therapeutic_anticoagulation", -4},
	{"prophylactic_anticoagulation", -3},
}

var impedeDexamethasonePoints = map[string]int{
	"none":      0,
	"low_dose":  2,
	"high_dose": 4,
}

// Evaluate sums the weighted risk factors; total range is -7 to 19
func (i *ImpedeVTE) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	total := 0
	for _, w := range impedeYesNoWeights {
		present, err := params.YesNo(w.field)
		if err != nil {
			return nil, err
		}
		if present {
			total += w.points
		}
	}

	dex, err := params.Enum("dexamethasone_use", "none", "low_dose", "high_dose")
	if err != nil {
		return nil, err
	}
	total += impedeDexamethasonePoints[dex]

	stage, description, interpretation := impedeInterpretation(total)
	return &domain.ScoreResult{
		Result:           total,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}, nil
}

func impedeInterpretation(score int) (stage, description, interpretation string) {
	switch {
	case score <= 3:
		return "Low Risk", fmt.Sprintf("Score %d points (<=3 points)", score),
			"Low VTE risk. 6-month cumulative VTE incidence 3.8-5.0%. Standard monitoring and general VTE prevention measures. Consider thromboprophylaxis only in presence of additional high-risk factors not captured by score."
	case score <= 7:
		return "Intermediate Risk", fmt.Sprintf("Score %d points (4-7 points)", score),
			"Intermediate VTE risk. 6-month cumulative VTE incidence 8.6-12.6%. Consider thromboprophylaxis with aspirin or low molecular weight heparin based on individual patient factors, bleeding risk, and treatment regimen. Regular monitoring recommended."
	default: // >= 8
		return "High Risk", fmt.Sprintf("Score %d points (>=8 points)", score),
			"High VTE risk. 6-month cumulative VTE incidence 24.1-40.5%. Thromboprophylaxis strongly recommended unless contraindicated. Preferred agents include low molecular weight heparin or direct oral anticoagulants. Close monitoring for VTE symptoms essential."
	}
}
