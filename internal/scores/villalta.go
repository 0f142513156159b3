package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// VillaltaScore implements the Villalta scale for diagnosing and grading
// post-thrombotic syndrome (PTS) after deep vein thrombosis. Five patient
// symptoms and six clinician-rated signs are each graded 0-3; a venous ulcer
// forces the severe classification regardless of the point total.
type VillaltaScore struct{}

// NewVillaltaScore creates the Villalta scale calculator
func NewVillaltaScore() *VillaltaScore { return &VillaltaScore{} }

// Definition returns catalog metadata
func (v *VillaltaScore) Definition() Definition {
	return Definition{
		ID:          "villalta_score",
		Name:        "Villalta Score for Post-thrombotic Syndrome",
		Specialty:   "hematology",
		Description: "Diagnoses and grades post-thrombotic syndrome after deep vein thrombosis",
	}
}

var villaltaSymptomFields = []string{
	"pain",
	"cramps",
	"heaviness",
	"paresthesia",
	"pruritus",
}

var villaltaSignFields = []string{
	"pretibial_edema",
	"skin_induration",
	"hyperpigmentation",
	"redness",
	"venous_ectasia",
	"calf_compression_pain",
}

// Evaluate sums the component grades (0-33) and classifies PTS severity:
// <5 none, 5-9 mild, 10-14 moderate, >=15 severe. A venous ulcer is
// classified severe regardless of the total.
func (v *VillaltaScore) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	symptomScore := 0
	for _, field := range villaltaSymptomFields {
		grade, err := params.Int(field, 0, 3)
		if err != nil {
			return nil, err
		}
		symptomScore += grade
	}

	signScore := 0
	for _, field := range villaltaSignFields {
		grade, err := params.Int(field, 0, 3)
		if err != nil {
			return nil, err
		}
		signScore += grade
	}

	ulcer, err := params.YesNo("venous_ulcer_present")
	if err != nil {
		return nil, err
	}

	total := symptomScore + signScore

	var stage, description, interpretation string
	switch {
	case ulcer:
		stage = "Severe PTS"
		description = "Severe post-thrombotic syndrome (venous ulcer present)"
		interpretation = fmt.Sprintf(
			"Villalta score %d points with venous ulcer present. A venous ulcer classifies the limb as severe post-thrombotic syndrome regardless of the point total. Compression therapy, wound care and specialist vascular referral recommended.",
			total)
	case total < 5:
		stage = "No PTS"
		description = "Post-thrombotic syndrome absent"
		interpretation = fmt.Sprintf(
			"Villalta score %d points (<5). Post-thrombotic syndrome is absent. Continue routine post-DVT follow-up and reassess if symptoms develop.", total)
	case total <= 9:
		stage = "Mild PTS"
		description = "Mild post-thrombotic syndrome"
		interpretation = fmt.Sprintf(
			"Villalta score %d points (5-9). Mild post-thrombotic syndrome. Compression stockings and symptom-directed management recommended; reassess at follow-up.", total)
	case total <= 14:
		stage = "Moderate PTS"
		description = "Moderate post-thrombotic syndrome"
		interpretation = fmt.Sprintf(
			"Villalta score %d points (10-14). Moderate post-thrombotic syndrome. Compression therapy recommended; consider vascular medicine referral for persistent symptoms.", total)
	default:
		stage = "Severe PTS"
		description = "Severe post-thrombotic syndrome"
		interpretation = fmt.Sprintf(
			"Villalta score %d points (>=15). Severe post-thrombotic syndrome. Compression therapy and specialist vascular referral recommended; evaluate for deep venous obstruction.", total)
	}

	result := &domain.ScoreResult{
		Result:           total,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("component_breakdown", map[string]int{
		"symptom_score": symptomScore,
		"sign_score":    signScore,
	})
	result.WithExtra("ulcer_adjustment_applied", ulcer)
	return result, nil
}
