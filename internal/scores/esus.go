package scores

import (
	"context"

	"github.com/clinical-score-server/internal/domain"
)

// EsusCriteria implements the diagnostic criteria for embolic stroke of
// undetermined source (Hart 2014). A diagnosis requires all four clinical
// criteria after an adequate diagnostic evaluation.
type EsusCriteria struct{}

// NewEsusCriteria creates the ESUS criteria calculator
func NewEsusCriteria() *EsusCriteria { return &EsusCriteria{} }

// Definition returns catalog metadata
func (e *EsusCriteria) Definition() Definition {
	return Definition{
		ID:          "esus_criteria",
		Name:        "Embolic Stroke of Undetermined Source (ESUS) Criteria",
		Specialty:   "neurology",
		Description: "Determines whether a stroke qualifies as embolic stroke of undetermined source",
	}
}

var esusClinicalCriteria = []string{
	"stroke_type_non_lacunar",
	"no_significant_atherosclerosis",
	"no_major_cardioembolic_source",
	"no_other_specific_cause",
}

var esusEvaluationCriteria = []string{
	"adequate_cardiac_monitoring",
	"adequate_vascular_imaging",
	"adequate_cardiac_imaging",
}

// Evaluate applies the criteria. The diagnostic workup must be complete
// before the clinical criteria can be judged.
func (e *EsusCriteria) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	evaluationComplete := true
	for _, field := range esusEvaluationCriteria {
		done, err := params.YesNo(field)
		if err != nil {
			return nil, err
		}
		if !done {
			evaluationComplete = false
		}
	}

	clinicalMet := 0
	for _, field := range esusClinicalCriteria {
		met, err := params.YesNo(field)
		if err != nil {
			return nil, err
		}
		if met {
			clinicalMet++
		}
	}

	var result *domain.ScoreResult
	switch {
	case !evaluationComplete:
		result = &domain.ScoreResult{
			Result: "Inadequate Evaluation",
			Interpretation: "The diagnostic evaluation is incomplete. ESUS requires adequate cardiac monitoring, " +
				"vascular imaging of the supplying arteries and cardiac imaging before the diagnosis can be made. " +
				"Complete the outstanding studies and reassess.",
			Stage:            "Inadequate Evaluation",
			StageDescription: "Diagnostic workup incomplete",
		}
	case clinicalMet == len(esusClinicalCriteria):
		result = &domain.ScoreResult{
			Result: "ESUS Diagnosis Confirmed",
			Interpretation: "All ESUS criteria are met: non-lacunar infarct without significant proximal " +
				"atherosclerosis, major cardioembolic source or other specific cause after an adequate evaluation. " +
				"Consider prolonged cardiac monitoring for occult atrial fibrillation and secondary prevention per guidelines.",
			Stage:            "ESUS Diagnosis Confirmed",
			StageDescription: "Meets all ESUS diagnostic criteria",
		}
	default:
		result = &domain.ScoreResult{
			Result: "ESUS Diagnosis Not Met",
			Interpretation: "One or more ESUS criteria are not satisfied. The stroke has an identified or probable " +
				"mechanism and should be classified and managed by that etiology.",
			Stage:            "ESUS Diagnosis Not Met",
			StageDescription: "Does not meet ESUS diagnostic criteria",
		}
	}
	result.WithExtra("clinical_criteria_met", clinicalMet)
	result.WithExtra("evaluation_complete", evaluationComplete)
	return result, nil
}
