package scores

import (
	"context"
	"fmt"
	"math"

	"github.com/clinical-score-server/internal/domain"
)

// VacoIndex implements the Veterans Health Administration COVID-19 (VACO)
// index for 30-day mortality after SARS-CoV-2 infection (King 2020). The
// logistic model combines age, sex and Charlson comorbidity burden.
type VacoIndex struct{}

// NewVacoIndex creates the VACO index calculator
func NewVacoIndex() *VacoIndex { return &VacoIndex{} }

// Definition returns catalog metadata
func (v *VacoIndex) Definition() Definition {
	return Definition{
		ID:          "vaco_index_covid19",
		Name:        "VACO Index for COVID-19 Mortality",
		Specialty:   "infectious_disease",
		Description: "Estimates 30-day mortality risk after COVID-19 infection from age, sex and comorbidities",
	}
}

func vacoAgeCoefficient(age int) float64 {
	switch {
	case age < 50:
		return -2.228678713
	case age < 55:
		return 0
	case age < 60:
		return 0.400599289
	case age < 65:
		return 0.941322019
	case age < 70:
		return 1.295007128
	case age < 75:
		return 1.629533438
	case age < 80:
		return 1.763345763
	case age < 90:
		return 1.927443543
	default:
		return 2.018752269
	}
}

// Charlson comorbidity points feeding the model's CCI term
var vacoYesNoCCI = []struct {
	field  string
	points int
}{
	{"chronic_pulmonary_disease", 1},
	{"peripheral_vascular_disease", 1},
	{"congestive_heart_failure", 1},
	{"dementia", 1},
	{"cerebrovascular_accident", 1},
	{"myocardial_infarction", 1},
	{"peptic_ulcer_disease", 1},
	{"rheumatologic_disease", 1},
	{"paralysis", 2},
	{"aids", 6},
}

var vacoDiabetesCCI = map[string]int{
	"none":          0,
	"uncomplicated": 1,
	"complicated":   2,
}

var vacoRenalCCI = map[string]int{
	"none":          0,
	"mild_moderate": 1,
	"severe":        2,
}

var vacoCancerCCI = map[string]int{
	"none":             0,
	"localized_solid":  2,
	"metastatic_solid": 6,
	"leukemia":         2,
	"lymphoma":         2,
}

var vacoLiverCCI = map[string]int{
	"none":            0,
	"mild":            1,
	"moderate_severe": 3,
}

// Evaluate computes the logistic risk estimate as a percentage
func (v *VacoIndex) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	age, err := params.Int("age", 20, 115)
	if err != nil {
		return nil, err
	}
	sex, err := params.Enum("sex", "male", "female")
	if err != nil {
		return nil, err
	}

	cci := 0
	for _, w := range vacoYesNoCCI {
		present, err := params.YesNo(w.field)
		if err != nil {
			return nil, err
		}
		if present {
			cci += w.points
		}
	}

	diabetes, err := params.Enum("diabetes", "none", "uncomplicated", "complicated")
	if err != nil {
		return nil, err
	}
	cci += vacoDiabetesCCI[diabetes]

	renal, err := params.Enum("renal_disease", "none", "mild_moderate", "severe")
	if err != nil {
		return nil, err
	}
	cci += vacoRenalCCI[renal]

	cancer, err := params.Enum("cancer", "none", "localized_solid", "metastatic_solid", "leukemia", "lymphoma")
	if err != nil {
		return nil, err
	}
	cci += vacoCancerCCI[cancer]

	liver, err := params.Enum("liver_disease", "none", "mild", "moderate_severe")
	if err != nil {
		return nil, err
	}
	cci += vacoLiverCCI[liver]

	sexCoeff := 0.0
	if sex == "male" {
		sexCoeff = 0.322291449
	}

	logOdds := -5.645 + vacoAgeCoefficient(age) + sexCoeff + 0.254*float64(cci)
	risk := math.Exp(logOdds) / (1 + math.Exp(logOdds)) * 100
	risk = math.Round(risk*10) / 10

	var stage, description string
	switch {
	case risk <= 8.7:
		stage = "Lower Risk"
		description = "Lower risk of 30-day mortality"
	case risk <= 16.0:
		stage = "Moderate Risk"
		description = "Moderate risk of 30-day mortality"
	case risk <= 21.2:
		stage = "High Risk"
		description = "High risk of 30-day mortality"
	default:
		stage = "Extreme Risk"
		description = "Extreme risk of 30-day mortality"
	}

	interpretation := fmt.Sprintf(
		"VACO index estimates a %.1f%% risk of death within 30 days of COVID-19 infection (Charlson comorbidity points: %d). %s. Risk estimates assume infection is confirmed and reflect pre-vaccination cohorts.",
		risk, cci, description)

	result := &domain.ScoreResult{
		Result:           risk,
		Unit:             "percentage",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("charlson_comorbidity_points", cci)
	return result, nil
}
