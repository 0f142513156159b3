package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// News2 implements the National Early Warning Score 2 (Royal College of
// Physicians 2017). Vital signs are supplied as pre-banded categories.
// Patients with hypercapnic respiratory failure use oxygen saturation
// Scale 2.
type News2 struct{}

// NewNews2 creates the NEWS2 calculator
func NewNews2() *News2 { return &News2{} }

// Definition returns catalog metadata
func (n *News2) Definition() Definition {
	return Definition{
		ID:          "news_2",
		Name:        "National Early Warning Score 2 (NEWS2)",
		Specialty:   "emergency_medicine",
		Description: "Detects clinical deterioration in adults from banded vital sign observations",
	}
}

var news2RespiratoryRate = map[string]int{
	"8_or_less":  3,
	"9_to_11":    1,
	"12_to_20":   0,
	"21_to_24":   2,
	"25_or_more": 3,
}

// Saturation categories from both scales; a category from the other scale is
// cross-mapped rather than rejected.
var news2SpO2Categories = []string{
	"83_or_less", "84_to_85", "86_to_87", "88_to_92", "91_or_less",
	"92_to_93", "93_to_94", "94_to_95", "95_to_96", "96_or_more", "97_or_more",
}

// news2SpO2Score applies Scale 2 (target 88-92%) in hypercapnic respiratory
// failure, where saturations above the target range score points only on
// supplemental oxygen; room air above 92% scores 0. Scale 1 (target >=96%)
// applies otherwise.
func news2SpO2Score(category string, hypercapnic, supplementalO2 bool) int {
	if hypercapnic {
		switch category {
		case "83_or_less", "91_or_less":
			return 3
		case "84_to_85":
			return 2
		case "86_to_87":
			return 1
		case "88_to_92", "92_to_93":
			return 0
		case "93_to_94":
			if supplementalO2 {
				return 1
			}
			return 0
		case "95_to_96":
			if supplementalO2 {
				return 2
			}
			return 0
		case "97_or_more":
			if supplementalO2 {
				return 3
			}
			return 0
		default: // 94_to_95, 96_or_more
			return 0
		}
	}

	switch category {
	case "91_or_less", "83_or_less", "84_to_85", "86_to_87":
		return 3
	case "92_to_93", "88_to_92":
		return 2
	case "94_to_95", "93_to_94":
		return 1
	default: // 95_to_96, 96_or_more, 97_or_more
		return 0
	}
}

var news2Temperature = map[string]int{
	"35_or_less":   3,
	"35_1_to_36":   1,
	"36_1_to_38":   0,
	"38_1_to_39":   1,
	"39_1_or_more": 2,
}

var news2SystolicBP = map[string]int{
	"90_or_less":  3,
	"91_to_100":   2,
	"101_to_110":  1,
	"111_to_219":  0,
	"220_or_more": 3,
}

var news2HeartRate = map[string]int{
	"40_or_less":  3,
	"41_to_50":    1,
	"51_to_90":    0,
	"91_to_110":   1,
	"111_to_130":  2,
	"131_or_more": 3,
}

func news2Categories(table map[string]int) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	return keys
}

// Evaluate sums the component scores and applies the NEWS2 escalation bands.
// Any single component scoring 3 triggers the red score pathway.
func (n *News2) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	hypercapnic, err := params.YesNo("hypercapnic_respiratory_failure")
	if err != nil {
		return nil, err
	}

	spo2Scale := 1
	if hypercapnic {
		spo2Scale = 2
	}

	respiratoryRate, err := params.Enum("respiratory_rate", news2Categories(news2RespiratoryRate)...)
	if err != nil {
		return nil, err
	}
	oxygenSaturation, err := params.Enum("oxygen_saturation", news2SpO2Categories...)
	if err != nil {
		return nil, err
	}
	supplementalOxygen, err := params.YesNo("supplemental_oxygen")
	if err != nil {
		return nil, err
	}
	temperature, err := params.Enum("temperature", news2Categories(news2Temperature)...)
	if err != nil {
		return nil, err
	}
	systolicBP, err := params.Enum("systolic_bp", news2Categories(news2SystolicBP)...)
	if err != nil {
		return nil, err
	}
	heartRate, err := params.Enum("heart_rate", news2Categories(news2HeartRate)...)
	if err != nil {
		return nil, err
	}
	consciousness, err := params.Enum("consciousness", "alert", "altered")
	if err != nil {
		return nil, err
	}

	componentScores := []int{
		news2RespiratoryRate[respiratoryRate],
		news2SpO2Score(oxygenSaturation, hypercapnic, supplementalOxygen),
		news2Temperature[temperature],
		news2SystolicBP[systolicBP],
		news2HeartRate[heartRate],
	}
	if consciousness == "altered" {
		componentScores = append(componentScores, 3)
	} else {
		componentScores = append(componentScores, 0)
	}

	total := 0
	redScore := false
	for _, s := range componentScores {
		total += s
		if s == 3 {
			redScore = true
		}
	}
	// Supplemental oxygen scores 2 but never triggers the red pathway
	if supplementalOxygen {
		total += 2
	}

	var stage, description, guidance string
	switch {
	case redScore && total < 5:
		stage = "Low-Medium Risk"
		description = "RED score - Individual parameter scoring 3"
		guidance = "A single parameter scored 3 points. Urgent review by a registered nurse to decide escalation of care and monitoring frequency, minimum hourly observations."
	case total == 0:
		stage = "Low Risk"
		description = "Low clinical risk"
		guidance = "Continue routine monitoring, minimum 12-hourly observations."
	case total <= 4:
		stage = "Low Risk"
		description = "Low clinical risk"
		guidance = "Assessment by a registered nurse; observations at minimum 4-6 hourly intervals."
	case total <= 6:
		stage = "Medium Risk"
		description = "Medium clinical risk"
		guidance = "Urgent review by a clinician skilled in acute illness assessment. Observations at minimum hourly intervals; consider escalation to a team with critical care competencies."
	default:
		stage = "High Risk"
		description = "High clinical risk"
		guidance = "Emergency assessment by a critical care team. Continuous monitoring of vital signs; consider transfer to a higher level of care."
	}

	interpretation := fmt.Sprintf("NEWS2 score %d points. %s", total, guidance)

	result := &domain.ScoreResult{
		Result:           total,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("red_score", redScore)
	result.WithExtra("oxygen_saturation_scale", spo2Scale)
	return result, nil
}
