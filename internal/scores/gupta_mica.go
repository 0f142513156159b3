package scores

import (
	"context"
	"fmt"
	"math"

	"github.com/clinical-score-server/internal/domain"
)

// GuptaMICA implements the Gupta perioperative risk calculator for
// myocardial infarction or cardiac arrest within 30 days of surgery
// (Gupta 2011).
type GuptaMICA struct{}

// NewGuptaMICA creates the Gupta MICA calculator
func NewGuptaMICA() *GuptaMICA { return &GuptaMICA{} }

// Definition returns catalog metadata
func (g *GuptaMICA) Definition() Definition {
	return Definition{
		ID:          "gupta_mica",
		Name:        "Gupta Perioperative Risk for MI or Cardiac Arrest (MICA)",
		Specialty:   "anesthesiology",
		Description: "Estimates risk of myocardial infarction or cardiac arrest within 30 days after surgery",
	}
}

var guptaFunctionalStatusCoeff = map[string]float64{
	"independent":         0,
	"partially_dependent": 0.65,
	"totally_dependent":   1.03,
}

var guptaASACoeff = map[string]float64{
	"1": -5.17,
	"2": -3.29,
	"3": -1.92,
	"4": -0.95,
	"5": 0,
}

var guptaCreatinineCoeff = map[string]float64{
	"normal":   0,
	"elevated": 0.61,
	"unknown":  -0.10,
}

var guptaSurgeryCoeff = map[string]float64{
	"aortic":                               1.60,
	"brain":                                1.40,
	"cardiac":                              1.01,
	"foregut_hepatobiliary":                0.82,
	"gallbladder_appendix_adrenals_spleen": 0.67,
	"intestinal":                           0.58,
	"neck":                                 0.40,
	"obstetric_gynecologic":                0.28,
	"orthopedic_non_spine":                 0.20,
	"peripheral_vascular":                  0.16,
	"skin":                                 0.12,
	"spine":                                0.10,
	"thoracic_non_cardiac":                 0.06,
	"urology_non_renal":                    0.04,
	"renal":                                0.02,
	"hernia":                               0.0,
	"thyroid_parathyroid":                  -0.32,
	"breast":                               -1.61,
	"eye":                                  -1.05,
	"vein":                                 -1.09,
}

func guptaSurgeryTypes() []string {
	return []string{
		"aortic", "brain", "cardiac", "foregut_hepatobiliary",
		"gallbladder_appendix_adrenals_spleen", "intestinal", "neck",
		"obstetric_gynecologic", "orthopedic_non_spine", "peripheral_vascular",
		"skin", "spine", "thoracic_non_cardiac", "urology_non_renal",
		"renal", "hernia", "thyroid_parathyroid", "breast", "eye", "vein",
	}
}

// Evaluate computes the logistic risk estimate as a percentage
func (g *GuptaMICA) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	age, err := params.Int("age", 18, 120)
	if err != nil {
		return nil, err
	}
	functionalStatus, err := params.Enum("functional_status",
		"independent", "partially_dependent", "totally_dependent")
	if err != nil {
		return nil, err
	}
	asaClass, err := params.Enum("asa_class", "1", "2", "3", "4", "5")
	if err != nil {
		return nil, err
	}
	creatinineStatus, err := params.Enum("creatinine_status", "normal", "elevated", "unknown")
	if err != nil {
		return nil, err
	}
	surgeryType, err := params.Enum("surgery_type", guptaSurgeryTypes()...)
	if err != nil {
		return nil, err
	}

	x := -5.25 +
		float64(age)*0.02 +
		guptaFunctionalStatusCoeff[functionalStatus] +
		guptaASACoeff[asaClass] +
		guptaCreatinineCoeff[creatinineStatus] +
		guptaSurgeryCoeff[surgeryType]

	risk := math.Exp(x) / (1 + math.Exp(x)) * 100
	risk = math.Round(risk*100) / 100

	var stage, description, guidance string
	switch {
	case risk < 0.5:
		stage = "Very Low Risk"
		description = "Very low perioperative cardiac risk"
		guidance = "Very low risk of perioperative myocardial infarction or cardiac arrest. No additional cardiac workup indicated."
	case risk < 1.0:
		stage = "Low Risk"
		description = "Low perioperative cardiac risk"
		guidance = "Low risk of perioperative cardiac events. Routine perioperative care appropriate."
	case risk < 2.0:
		stage = "Moderate Risk"
		description = "Moderate perioperative cardiac risk"
		guidance = "Moderate risk of perioperative cardiac events. Consider preoperative cardiology assessment in context of functional capacity."
	case risk < 5.0:
		stage = "High Risk"
		description = "High perioperative cardiac risk"
		guidance = "High risk of perioperative cardiac events. Preoperative cardiac evaluation and perioperative monitoring recommended."
	default:
		stage = "Very High Risk"
		description = "Very high perioperative cardiac risk"
		guidance = "Very high risk of perioperative cardiac events. Multidisciplinary review of surgical indication, optimization and postoperative intensive monitoring recommended."
	}

	interpretation := fmt.Sprintf(
		"Estimated %.2f%% risk of myocardial infarction or cardiac arrest within 30 days of surgery. %s",
		risk, guidance)

	return &domain.ScoreResult{
		Result:           risk,
		Unit:             "percentage",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}, nil
}
