package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// Chads2Score implements the CHADS2 score estimating annual stroke risk in
// atrial fibrillation (Gage 2001).
type Chads2Score struct{}

// NewChads2Score creates the CHADS2 calculator
func NewChads2Score() *Chads2Score { return &Chads2Score{} }

// Definition returns catalog metadata
func (c *Chads2Score) Definition() Definition {
	return Definition{
		ID:          "chads2_score",
		Name:        "CHADS2 Score for Atrial Fibrillation Stroke Risk",
		Specialty:   "cardiology",
		Description: "Estimates annual stroke risk in patients with nonvalvular atrial fibrillation",
	}
}

var chads2Weights = []struct {
	field  string
	points int
}{
	{"congestive_heart_failure", 1},
	{"hypertension", 1},
	{"age_75_or_older", 1},
	{"diabetes", 1},
	{"stroke_or_tia_history", 2},
}

var chads2AnnualRisk = map[int]struct {
	rate  string
	stage string
}{
	0: {"1.9%", "Low Risk"},
	1: {"2.8%", "Low-Intermediate Risk"},
	2: {"4.0%", "Intermediate Risk"},
	3: {"5.9%", "High Risk"},
	4: {"8.5%", "High Risk"},
	5: {"12.5%", "Very High Risk"},
	6: {"18.2%", "Very High Risk"},
}

// Evaluate sums the five weighted risk factors (0-6) and reports the
// corresponding annual stroke rate
func (c *Chads2Score) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	total := 0
	for _, w := range chads2Weights {
		present, err := params.YesNo(w.field)
		if err != nil {
			return nil, err
		}
		if present {
			total += w.points
		}
	}

	risk := chads2AnnualRisk[total]
	description := fmt.Sprintf("Annual stroke risk %s", risk.rate)

	var guidance string
	switch {
	case total == 0:
		guidance = "Anticoagulation generally not indicated; aspirin or no antithrombotic therapy may be considered."
	case total == 1:
		guidance = "Anticoagulation or aspirin may be considered based on patient preference and bleeding risk. Consider CHA2DS2-VASc for further refinement."
	default:
		guidance = "Oral anticoagulation recommended unless contraindicated."
	}

	interpretation := fmt.Sprintf(
		"CHADS2 score %d points. Estimated annual stroke risk %s without anticoagulation. %s",
		total, risk.rate, guidance)

	result := &domain.ScoreResult{
		Result:           total,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            risk.stage,
		StageDescription: description,
	}
	result.WithExtra("annual_stroke_risk", risk.rate)
	return result, nil
}
