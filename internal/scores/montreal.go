package scores

import (
	"context"
	"fmt"

	"github.com/clinical-score-server/internal/domain"
)

// MontrealIBD implements the Montreal classification for inflammatory bowel
// disease (Silverberg 2005). The result is the composite classification
// string, e.g. "A2L3B1p" for Crohn's disease or "A2E3S2" for ulcerative
// colitis.
type MontrealIBD struct{}

// NewMontrealIBD creates the Montreal classification calculator
func NewMontrealIBD() *MontrealIBD { return &MontrealIBD{} }

// Definition returns catalog metadata
func (m *MontrealIBD) Definition() Definition {
	return Definition{
		ID:          "montreal_classification_ibd",
		Name:        "Montreal Classification for Inflammatory Bowel Disease",
		Specialty:   "gastroenterology",
		Description: "Classifies Crohn's disease and ulcerative colitis by age at diagnosis, extent, location and behavior",
	}
}

type montrealCategory struct {
	code        string
	description string
}

var montrealCrohnsLocations = map[string]montrealCategory{
	"L1_ileal":       {"L1", "Ileal disease"},
	"L2_colonic":     {"L2", "Colonic disease"},
	"L3_ileocolonic": {"L3", "Ileocolonic disease"},
	"L4_upper_gi":    {"L4", "Isolated upper gastrointestinal disease"},
}

var montrealCrohnsBehaviors = map[string]montrealCategory{
	"B1_inflammatory": {"B1", "Non-stricturing, non-penetrating (inflammatory)"},
	"B2_stricturing":  {"B2", "Stricturing disease"},
	"B3_penetrating":  {"B3", "Penetrating disease"},
}

var montrealUCExtents = map[string]montrealCategory{
	"E1_proctitis":  {"E1", "Ulcerative proctitis"},
	"E2_left_sided": {"E2", "Left-sided colitis (distal to splenic flexure)"},
	"E3_extensive":  {"E3", "Extensive colitis (proximal to splenic flexure)"},
}

var montrealUCSeverities = map[string]montrealCategory{
	"S0_remission": {"S0", "Clinical remission"},
	"S1_mild":      {"S1", "Mild ulcerative colitis"},
	"S2_moderate":  {"S2", "Moderate ulcerative colitis"},
	"S3_severe":    {"S3", "Severe ulcerative colitis"},
}

func montrealAgeCategory(age int) montrealCategory {
	switch {
	case age <= 16:
		return montrealCategory{"A1", "Pediatric onset (<17 years)"}
	case age <= 40:
		return montrealCategory{"A2", "Onset between 17 and 40 years"}
	default:
		return montrealCategory{"A3", "Onset after 40 years"}
	}
}

// Evaluate builds the classification code from the disease-type-specific
// axes. Crohn's requires location and behavior; ulcerative colitis requires
// extent and severity.
func (m *MontrealIBD) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	diseaseType, err := params.Enum("disease_type", "crohns_disease", "ulcerative_colitis")
	if err != nil {
		return nil, err
	}
	age, err := params.Int("age_at_diagnosis", 0, 120)
	if err != nil {
		return nil, err
	}
	ageCat := montrealAgeCategory(age)

	components := map[string]string{
		"age_category": fmt.Sprintf("%s: %s", ageCat.code, ageCat.description),
	}

	if diseaseType == "crohns_disease" {
		location, err := params.Enum("crohns_location",
			"L1_ileal", "L2_colonic", "L3_ileocolonic", "L4_upper_gi")
		if err != nil {
			return nil, err
		}
		behavior, err := params.Enum("crohns_behavior",
			"B1_inflammatory", "B2_stricturing", "B3_penetrating")
		if err != nil {
			return nil, err
		}
		perianal, err := params.OptionalYesNo("perianal_disease")
		if err != nil {
			return nil, err
		}

		loc := montrealCrohnsLocations[location]
		beh := montrealCrohnsBehaviors[behavior]
		code := ageCat.code + loc.code + beh.code
		perianalText := ""
		if perianal {
			code += "p"
			perianalText = " with perianal disease modifier"
		}

		components["location"] = fmt.Sprintf("%s: %s", loc.code, loc.description)
		components["behavior"] = fmt.Sprintf("%s: %s", beh.code, beh.description)

		description := fmt.Sprintf("%s, %s, %s%s",
			ageCat.description, loc.description, beh.description, perianalText)

		result := &domain.ScoreResult{
			Result: code,
			Unit:   "Montreal Classification",
			Interpretation: fmt.Sprintf(
				"Montreal classification %s: %s. Classification guides prognosis and therapeutic strategy in Crohn's disease.",
				code, description),
			Stage:            "Crohn's Disease Classification",
			StageDescription: description,
		}
		result.WithExtra("components", components)
		return result, nil
	}

	extent, err := params.Enum("uc_extent", "E1_proctitis", "E2_left_sided", "E3_extensive")
	if err != nil {
		return nil, err
	}
	severity, err := params.Enum("uc_severity", "S0_remission", "S1_mild", "S2_moderate", "S3_severe")
	if err != nil {
		return nil, err
	}

	ext := montrealUCExtents[extent]
	sev := montrealUCSeverities[severity]
	code := ageCat.code + ext.code + sev.code

	components["extent"] = fmt.Sprintf("%s: %s", ext.code, ext.description)
	components["severity"] = fmt.Sprintf("%s: %s", sev.code, sev.description)

	description := fmt.Sprintf("%s, %s, %s", ageCat.description, ext.description, sev.description)

	result := &domain.ScoreResult{
		Result: code,
		Unit:   "Montreal Classification",
		Interpretation: fmt.Sprintf(
			"Montreal classification %s: %s. Extent and severity guide surveillance intervals and therapy in ulcerative colitis.",
			code, description),
		Stage:            "Ulcerative Colitis Classification",
		StageDescription: description,
	}
	result.WithExtra("components", components)
	return result, nil
}
