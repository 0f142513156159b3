package scores

import (
	"context"

	"github.com/clinical-score-server/internal/domain"
)

// CentorScore implements the Centor score (modified by McIsaac) for
// estimating the probability of group A streptococcal pharyngitis.
type CentorScore struct{}

// NewCentorScore creates the Centor score calculator
func NewCentorScore() *CentorScore { return &CentorScore{} }

// Definition returns catalog metadata
func (c *CentorScore) Definition() Definition {
	return Definition{
		ID:          "centor_score",
		Name:        "Centor Score (Modified/McIsaac) for Strep Pharyngitis",
		Specialty:   "infectious_disease",
		Description: "Estimates probability of group A streptococcal pharyngitis and guides testing and antibiotic decisions",
	}
}

// Evaluate computes the score: one point per clinical criterion plus the
// McIsaac age adjustment (3-14 years +1, 15-44 years 0, >=45 years -1).
func (c *CentorScore) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	exudate, err := params.YesNo("tonsillar_exudate")
	if err != nil {
		return nil, err
	}
	tenderNodes, err := params.YesNo("tender_cervical_nodes")
	if err != nil {
		return nil, err
	}
	fever, err := params.YesNo("fever_history")
	if err != nil {
		return nil, err
	}
	coughAbsent, err := params.YesNo("cough_absent")
	if err != nil {
		return nil, err
	}
	age, err := params.Int("age_years", 3, 120)
	if err != nil {
		return nil, err
	}

	criteriaPoints := 0
	for _, present := range []bool{exudate, tenderNodes, fever, coughAbsent} {
		if present {
			criteriaPoints++
		}
	}

	ageAdjustment := 0
	switch {
	case age <= 14:
		ageAdjustment = 1
	case age >= 45:
		ageAdjustment = -1
	}

	total := criteriaPoints + ageAdjustment
	stage, description, probability, interpretation := centorInterpretation(total)

	result := &domain.ScoreResult{
		Result:           total,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("criteria_points", criteriaPoints)
	result.WithExtra("age_adjustment", ageAdjustment)
	result.WithExtra("strep_probability", probability)
	return result, nil
}

func centorInterpretation(score int) (stage, description, probability, interpretation string) {
	switch {
	case score <= 0:
		return "Very Low Risk", "Very low probability of streptococcal pharyngitis", "1-2.5%",
			"Probability of group A streptococcal pharyngitis 1-2.5%. No further testing or antibiotics indicated. Symptomatic treatment is appropriate."
	case score == 1:
		return "Low Risk", "Low probability of streptococcal pharyngitis", "5-10%",
			"Probability of group A streptococcal pharyngitis 5-10%. No testing or antibiotics routinely indicated; reassess if symptoms progress."
	case score == 2:
		return "Moderate Risk", "Moderate probability of streptococcal pharyngitis", "11-17%",
			"Probability of group A streptococcal pharyngitis 11-17%. Consider rapid antigen testing and/or throat culture; treat if positive."
	case score == 3:
		return "Moderate-High Risk", "Elevated probability of streptococcal pharyngitis", "28-35%",
			"Probability of group A streptococcal pharyngitis 28-35%. Rapid antigen testing and/or throat culture recommended; treat if positive."
	default: // >= 4
		return "High Risk", "High probability of streptococcal pharyngitis", "51-53%",
			"Probability of group A streptococcal pharyngitis 51-53%. Consider empiric antibiotic treatment in addition to testing, per local guidance."
	}
}
