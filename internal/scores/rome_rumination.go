package scores

import (
	"context"

	"github.com/clinical-score-server/internal/domain"
)

// RomeIVRumination implements the Rome IV diagnostic criteria for rumination
// syndrome in adults. Diagnosis requires both positive criteria and the
// absence of all alarm features.
type RomeIVRumination struct{}

// NewRomeIVRumination creates the Rome IV rumination syndrome calculator
func NewRomeIVRumination() *RomeIVRumination { return &RomeIVRumination{} }

// Definition returns catalog metadata
func (r *RomeIVRumination) Definition() Definition {
	return Definition{
		ID:          "rome_iv_rumination_syndrome",
		Name:        "Rome IV Criteria for Rumination Syndrome",
		Specialty:   "gastroenterology",
		Description: "Applies Rome IV diagnostic criteria for rumination syndrome",
	}
}

var romeRuminationCriteria = []string{
	"persistent_recurrent_regurgitation",
	"regurgitation_not_preceded_by_retching",
	"exclusion_gi_bleeding",
	"exclusion_iron_deficiency_anemia",
	"exclusion_heartburn_reflux",
	"exclusion_weight_loss",
	"exclusion_abdominal_mass_lymphadenopathy",
	"exclusion_dysphagia",
	"exclusion_persistent_vomiting",
}

// Evaluate requires every criterion answered yes for a positive diagnosis
func (r *RomeIVRumination) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	met := 0
	for _, field := range romeRuminationCriteria {
		yes, err := params.YesNo(field)
		if err != nil {
			return nil, err
		}
		if yes {
			met++
		}
	}

	if met == len(romeRuminationCriteria) {
		result := &domain.ScoreResult{
			Result: "Positive",
			Unit:   "diagnosis",
			Interpretation: "Meets Rome IV criteria for rumination syndrome: persistent or recurrent regurgitation " +
				"not preceded by retching, with all alarm features excluded. Diaphragmatic breathing training is " +
				"first-line therapy; consider referral for behavioral treatment.",
			Stage:            "Criteria Met",
			StageDescription: "Meets Rome IV criteria",
		}
		result.WithExtra("criteria_met", met)
		return result, nil
	}

	result := &domain.ScoreResult{
		Result: "Negative",
		Unit:   "diagnosis",
		Interpretation: "Does not meet Rome IV criteria for rumination syndrome. Alarm features or atypical " +
			"symptoms are present; evaluate for structural, inflammatory or metabolic disease before attributing " +
			"symptoms to a functional disorder.",
		Stage:            "Criteria Not Met",
		StageDescription: "Does not meet Rome IV criteria",
	}
	result.WithExtra("criteria_met", met)
	return result, nil
}
