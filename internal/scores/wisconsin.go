package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// WisconsinCriteria implements the Wisconsin criteria for selecting
// maxillofacial CT imaging after facial trauma. Any positive criterion
// indicates CT.
type WisconsinCriteria struct{}

// NewWisconsinCriteria creates the Wisconsin criteria calculator
func NewWisconsinCriteria() *WisconsinCriteria { return &WisconsinCriteria{} }

// Definition returns catalog metadata
func (w *WisconsinCriteria) Definition() Definition {
	return Definition{
		ID:          "wisconsin_criteria_maxillofacial_trauma",
		Name:        "Wisconsin Criteria for Maxillofacial Trauma CT",
		Specialty:   "emergency_medicine",
		Description: "Determines need for maxillofacial CT imaging after facial trauma",
	}
}

var wisconsinCriteria = []struct {
	field       string
	description string
}{
	{"high_energy_mechanism", "High-energy mechanism of injury"},
	{"facial_deformity", "Visible facial deformity or asymmetry"},
	{"malocclusion", "Dental malocclusion or inability to open mouth"},
	{"facial_numbness", "Facial numbness or altered sensation"},
	{"periorbital_swelling", "Significant periorbital swelling or hematoma"},
	{"diplopia", "Double vision or diplopia"},
	{"palpable_step_off", "Palpable step-off deformity of facial bones"},
	{"epistaxis", "Epistaxis or nasal deformity"},
}

// Evaluate checks the eight criteria; any positive finding indicates CT
func (w *WisconsinCriteria) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	positive := make([]map[string]string, 0, len(wisconsinCriteria))
	for _, c := range wisconsinCriteria {
		present, err := params.YesNo(c.field)
		if err != nil {
			return nil, err
		}
		if present {
			positive = append(positive, map[string]string{
				"criterion":   c.field,
				"description": c.description,
			})
		}
	}

	var result *domain.ScoreResult
	if len(positive) == 0 {
		result = &domain.ScoreResult{
			Result: "CT not indicated",
			Interpretation: "No Wisconsin criteria present. Maxillofacial CT is not indicated. " +
				"Clinical observation and reassessment if symptoms develop.",
			Stage:            "Low Risk",
			StageDescription: "CT not indicated",
		}
	} else {
		result = &domain.ScoreResult{
			Result: "CT indicated",
			Interpretation: fmt.Sprintf(
				"%d of %d Wisconsin criteria present. Maxillofacial CT is indicated to evaluate for facial fractures.",
				len(positive), len(wisconsinCriteria)),
			Stage:            "High Risk",
			StageDescription: "CT indicated",
		}
	}
	result.WithExtra("positive_criteria_count", len(positive))
	result.WithExtra("positive_criteria", positive)
	return result, nil
}
