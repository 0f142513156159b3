package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// MayoDAI implements the Mayo Disease Activity Index (full Mayo score) for
// ulcerative colitis. Four subscores graded 0-3 give a total of 0-12.
type MayoDAI struct{}

// NewMayoDAI creates the Mayo DAI calculator
func NewMayoDAI() *MayoDAI { return &MayoDAI{} }

// Definition returns catalog metadata
func (m *MayoDAI) Definition() Definition {
	return Definition{
		ID:          "mayo_dai",
		Name:        "Mayo Disease Activity Index for Ulcerative Colitis",
		Specialty:   "gastroenterology",
		Description: "Grades ulcerative colitis activity from stool frequency, bleeding, endoscopy and physician assessment",
	}
}

var mayoComponents = []string{
	"stool_frequency",
	"rectal_bleeding",
	"endoscopic_findings",
	"physician_global_assessment",
}

// Evaluate sums the four subscores and classifies disease activity:
// <=2 remission, 3-5 mild, 6-10 moderate, 11-12 severe.
func (m *MayoDAI) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	components := make(map[string]int, len(mayoComponents))
	total := 0
	for _, field := range mayoComponents {
		grade, err := params.Int(field, 0, 3)
		if err != nil {
			return nil, err
		}
		components[field] = grade
		total += grade
	}

	var stage, description, guidance string
	switch {
	case total <= 2:
		stage = "Remission"
		description = "Disease in remission"
		guidance = "Ulcerative colitis in remission. Continue maintenance therapy and routine surveillance."
	case total <= 5:
		stage = "Mild Disease"
		description = "Mildly active disease"
		guidance = "Mildly active ulcerative colitis. Optimize 5-ASA therapy and reassess response."
	case total <= 10:
		stage = "Moderate Disease"
		description = "Moderately active disease"
		guidance = "Moderately active ulcerative colitis. Consider corticosteroids, immunomodulators or biologic therapy escalation."
	default:
		stage = "Severe Disease"
		description = "Severely active disease"
		guidance = "Severely active ulcerative colitis. Consider hospitalization, intravenous corticosteroids and early surgical consultation."
	}

	interpretation := fmt.Sprintf("Mayo score %d/12. %s", total, guidance)

	result := &domain.ScoreResult{
		Result:           total,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}
	result.WithExtra("component_scores", components)
	return result, nil
}
