package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// PhoenixSepsisScore implements the Phoenix sepsis criteria for children
// (Schlapbach 2024). Four organ subscores are summed; sepsis is a total of
// 2 or more with suspected infection, septic shock adds cardiovascular
// dysfunction.
type PhoenixSepsisScore struct{}

// NewPhoenixSepsisScore creates the Phoenix sepsis calculator
func NewPhoenixSepsisScore() *PhoenixSepsisScore { return &PhoenixSepsisScore{} }

// Definition returns catalog metadata
func (p *PhoenixSepsisScore) Definition() Definition {
	return Definition{
		ID:          "phoenix_sepsis_score",
		Name:        "Phoenix Sepsis Score",
		Specialty:   "pediatrics",
		Description: "Identifies sepsis and septic shock in children with suspected infection using four organ dysfunction subscores",
	}
}

var phoenixRespSupportPoints = map[string]int{
	"none":                            0,
	"supplemental_oxygen":             1,
	"high_flow_nasal_cannula":         2,
	"non_invasive_ventilation":        3,
	"invasive_mechanical_ventilation": 3,
}

// phoenixMAPThreshold returns the age-banded mean arterial pressure floor
// below which two cardiovascular points are scored
func phoenixMAPThreshold(age int) float64 {
	switch {
	case age < 1:
		return 31
	case age < 2:
		return 32
	case age < 5:
		return 32
	case age < 12:
		return 36
	default:
		return 44
	}
}

// Evaluate computes the four organ subscores and classifies the patient.
// Without suspected infection the score does not apply and zero is returned.
func (p *PhoenixSepsisScore) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	age, err := params.Int("age", 0, 17)
	if err != nil {
		return nil, err
	}
	suspectedInfection, err := params.YesNo("suspected_infection")
	if err != nil {
		return nil, err
	}

	if !suspectedInfection {
		result := &domain.ScoreResult{
			Result: 0,
			Unit:   "points",
			Interpretation: "Phoenix sepsis criteria apply only to children with suspected infection. " +
				"No suspected infection reported; the score is not applicable.",
			Stage:            "Not Applicable",
			StageDescription: "No suspected infection",
		}
		result.WithExtra("component_scores", map[string]int{
			"respiratory_score":    0,
			"cardiovascular_score": 0,
			"coagulation_score":    0,
			"neurologic_score":     0,
		})
		result.WithExtra("clinical_status", map[string]bool{
			"sepsis":       false,
			"septic_shock": false,
		})
		return result, nil
	}

	respScore, err := p.respiratoryScore(params)
	if err != nil {
		return nil, err
	}
	cardioScore, err := p.cardiovascularScore(params, age)
	if err != nil {
		return nil, err
	}
	coagScore, err := p.coagulationScore(params)
	if err != nil {
		return nil, err
	}
	neuroScore, err := p.neurologicScore(params)
	if err != nil {
		return nil, err
	}

	total := respScore + cardioScore + coagScore + neuroScore
	sepsis := total >= 2
	septicShock := sepsis && cardioScore >= 1

	var stage, description, guidance string
	switch {
	case septicShock:
		stage = "Septic Shock"
		description = "Sepsis with cardiovascular dysfunction"
		guidance = "Criteria for septic shock met. Immediate resuscitation, vasoactive support and intensive care management indicated."
	case sepsis:
		stage = "Sepsis"
		description = "Suspected infection with life-threatening organ dysfunction"
		guidance = "Criteria for sepsis met. Prompt antimicrobial therapy, source control and close monitoring for cardiovascular deterioration indicated."
	default:
		stage = "No Sepsis"
		description = "Criteria for sepsis not met"
		guidance = "Phoenix criteria for sepsis not met. Continue infection management and reassess if organ dysfunction develops."
	}

	interpretation := fmt.Sprintf(
		"Phoenix sepsis score %d points (respiratory %d, cardiovascular %d, coagulation %d, neurologic %d). %s",
		total, respScore, cardioScore, coagScore, neuroScore, guidance)

	result := &domain.ScoreResult{
		Result:           total,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("component_scores", map[string]int{
		"respiratory_score":    respScore,
		"cardiovascular_score": cardioScore,
		"coagulation_score":    coagScore,
		"neurologic_score":     neuroScore,
	})
	result.WithExtra("clinical_status", map[string]bool{
		"sepsis":       sepsis,
		"septic_shock": septicShock,
	})
	return result, nil
}

func (p *PhoenixSepsisScore) respiratoryScore(params domain.Params) (int, error) {
	support, err := params.Enum("respiratory_support",
		"none", "supplemental_oxygen", "high_flow_nasal_cannula",
		"non_invasive_ventilation", "invasive_mechanical_ventilation")
	if err != nil {
		return 0, err
	}
	score := phoenixRespSupportPoints[support]

	pfRatio, pfSet, err := params.OptionalFloat("pao2_fio2_ratio", 0, 600)
	if err != nil {
		return 0, err
	}
	sfRatio, sfSet, err := params.OptionalFloat("spo2_fio2_ratio", 0, 500)
	if err != nil {
		return 0, err
	}

	// PaO2/FiO2 takes precedence over SpO2/FiO2 when both are supplied
	if pfSet {
		switch {
		case pfRatio < 100:
			score = maxInt(score, 3)
		case pfRatio < 200:
			score = maxInt(score, 2)
		case pfRatio < 300:
			score = maxInt(score, 1)
		}
	} else if sfSet {
		switch {
		case sfRatio < 150:
			score = maxInt(score, 3)
		case sfRatio < 220:
			score = maxInt(score, 2)
		case sfRatio < 300:
			score = maxInt(score, 1)
		}
	}

	if score > 3 {
		score = 3
	}
	return score, nil
}

func (p *PhoenixSepsisScore) cardiovascularScore(params domain.Params, age int) (int, error) {
	vasoactives, err := params.Int("vasoactive_medications", 0, 10)
	if err != nil {
		return 0, err
	}
	score := 0
	switch {
	case vasoactives >= 2:
		score = 2
	case vasoactives == 1:
		score = 1
	}

	lactate, lactateSet, err := params.OptionalFloat("lactate", 0, 50)
	if err != nil {
		return 0, err
	}
	if lactateSet {
		switch {
		case lactate >= 11:
			score += 2
		case lactate >= 5:
			score += 1
		}
	}

	meanArterialPressure, mapSet, err := params.OptionalFloat("mean_arterial_pressure", 10, 200)
	if err != nil {
		return 0, err
	}
	if mapSet && meanArterialPressure < phoenixMAPThreshold(age) {
		score += 2
	}

	if score > 6 {
		score = 6
	}
	return score, nil
}

func (p *PhoenixSepsisScore) coagulationScore(params domain.Params) (int, error) {
	score := 0

	platelets, plateletsSet, err := params.OptionalFloat("platelets", 0, 2000)
	if err != nil {
		return 0, err
	}
	if plateletsSet && platelets < 100 {
		score++
	}

	inr, inrSet, err := params.OptionalFloat("inr", 0.5, 15)
	if err != nil {
		return 0, err
	}
	if inrSet && inr > 1.3 {
		score++
	}

	dDimer, dDimerSet, err := params.OptionalFloat("d_dimer", 0, 100)
	if err != nil {
		return 0, err
	}
	if dDimerSet && dDimer > 2.0 {
		score++
	}

	fibrinogen, fibrinogenSet, err := params.OptionalFloat("fibrinogen", 0, 20)
	if err != nil {
		return 0, err
	}
	if fibrinogenSet && fibrinogen < 1.0 {
		score++
	}

	if score > 2 {
		score = 2
	}
	return score, nil
}

func (p *PhoenixSepsisScore) neurologicScore(params domain.Params) (int, error) {
	gcs, err := params.Int("glasgow_coma_scale", 3, 15)
	if err != nil {
		return 0, err
	}
	score := 0
	if gcs < 11 {
		score++
	}

	pupils, err := params.Enum("pupil_reactivity", "both_reactive", "one_fixed", "both_fixed")
	if err != nil {
		return 0, err
	}
	switch pupils {
	case "one_fixed":
		score++
	case "both_fixed":
		score += 2
	}

	if score > 2 {
		score = 2
	}
	return score, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
