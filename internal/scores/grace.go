package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// GraceACSRisk implements the GRACE score for in-hospital mortality after
// acute coronary syndrome (Granger 2003).
type GraceACSRisk struct{}

// NewGraceACSRisk creates the GRACE ACS risk calculator
func NewGraceACSRisk() *GraceACSRisk { return &GraceACSRisk{} }

// Definition returns catalog metadata
func (g *GraceACSRisk) Definition() Definition {
	return Definition{
		ID:          "grace_acs_risk",
		Name:        "GRACE ACS Risk Score",
		Specialty:   "cardiology",
		Description: "Estimates in-hospital mortality risk for patients admitted with acute coronary syndrome",
	}
}

var graceKillipPoints = map[string]float64{
	"class_1": 0,
	"class_2": 20,
	"class_3": 39,
	"class_4": 59,
}

func graceAgePoints(age int) float64 {
	if age <= 40 {
		return 0
	}
	return float64(age-40) * 2.5
}

func graceHeartRatePoints(hr int) float64 {
	switch {
	case hr < 50:
		return 0
	case hr < 70:
		return 3
	case hr < 90:
		return 9
	case hr < 110:
		return 15
	case hr < 150:
		return 24
	case hr < 200:
		return 38
	default:
		return 46
	}
}

func graceSystolicBPPoints(sbp int) float64 {
	switch {
	case sbp < 80:
		return 58
	case sbp < 100:
		return 53
	case sbp < 120:
		return 43
	case sbp < 140:
		return 34
	case sbp < 160:
		return 24
	case sbp < 200:
		return 10
	default:
		return 0
	}
}

func graceCreatininePoints(creat float64) float64 {
	switch {
	case creat < 0.4:
		return 1
	case creat < 0.8:
		return 4
	case creat < 1.2:
		return 7
	case creat < 1.6:
		return 10
	case creat < 2.0:
		return 13
	case creat < 4.0:
		return 21
	default:
		return 28
	}
}

// Evaluate sums the weighted admission variables and maps the total through
// the published in-hospital mortality bands
func (g *GraceACSRisk) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	age, err := params.Int("age", 20, 100)
	if err != nil {
		return nil, err
	}
	heartRate, err := params.Int("heart_rate", 30, 250)
	if err != nil {
		return nil, err
	}
	systolicBP, err := params.Int("systolic_bp", 50, 300)
	if err != nil {
		return nil, err
	}
	creatinine, err := params.Float("creatinine", 0.3, 15.0)
	if err != nil {
		return nil, err
	}
	killip, err := params.Enum("killip_class", "class_1", "class_2", "class_3", "class_4")
	if err != nil {
		return nil, err
	}
	cardiacArrest, err := params.YesNo("cardiac_arrest")
	if err != nil {
		return nil, err
	}
	stDeviation, err := params.YesNo("st_deviation")
	if err != nil {
		return nil, err
	}
	elevatedBiomarkers, err := params.YesNo("elevated_biomarkers")
	if err != nil {
		return nil, err
	}

	total := graceAgePoints(age) +
		graceHeartRatePoints(heartRate) +
		graceSystolicBPPoints(systolicBP) +
		graceCreatininePoints(creatinine) +
		graceKillipPoints[killip]
	if cardiacArrest {
		total += 39
	}
	if stDeviation {
		total += 28
	}
	if elevatedBiomarkers {
		total += 14
	}

	score := int(total)
	stage, description, mortality, prognosis := graceInterpretation(score)

	interpretation := fmt.Sprintf(
		"GRACE score %d points. Estimated in-hospital mortality %s. %s",
		score, mortality, prognosis)

	result := &domain.ScoreResult{
		Result:           score,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("in_hospital_mortality", mortality)
	return result, nil
}

func graceInterpretation(score int) (stage, description, mortality, prognosis string) {
	switch {
	case score <= 87:
		return "Very Low Risk", "Excellent prognosis", "0-2%",
			"Excellent prognosis. Early discharge and outpatient management may be appropriate after standard ACS care."
	case score <= 128:
		return "Low Risk", "Good prognosis", "3-10%",
			"Good prognosis. Standard inpatient monitoring and guideline-directed medical therapy recommended."
	case score <= 149:
		return "Intermediate Risk", "Moderate prognosis", "10-20%",
			"Moderate prognosis. Consider early invasive strategy and close inpatient monitoring."
	case score <= 173:
		return "High Risk", "Poor prognosis", "20-30%",
			"Poor prognosis. Early invasive management and intensive monitoring recommended."
	case score <= 284:
		return "Very High Risk", "Very poor prognosis", "40-90%",
			"Very poor prognosis. Urgent invasive management and intensive care level monitoring recommended."
	default:
		return "Extremely High Risk", "Critical prognosis", ">=99%",
			"Critical prognosis. Immediate aggressive intervention and goals-of-care discussion warranted."
	}
}
