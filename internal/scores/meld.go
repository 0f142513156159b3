package scores

import (
	"context"
	"math"

	"github.com/clinical-score-server/internal/domain"
)

// MELD score constants. Inputs are clamped to documented floors and ceilings
// before the logarithmic transforms (Kamath 2001, Kim 2008, Kim 2021).
const (
	meldMinBilirubin  = 1.0
	meldMinCreatinine = 1.0
	meldMaxCreatinine = 4.0
	meldMinINR        = 1.0
	meldMinSodium     = 125.0
	meldMaxSodium     = 137.0
	meldMinAlbumin    = 1.5
	meldMaxAlbumin    = 3.5
	meldMinScore      = 6
	meldMaxScore      = 40
)

// MeldCombined implements the original MELD, MELD-Na and MELD 3.0 formulas
// behind a single meld_version selector. Version-specific fields (sodium,
// albumin, age, sex) are required only for the versions that use them.
type MeldCombined struct{}

// NewMeldCombined creates the combined MELD calculator
func NewMeldCombined() *MeldCombined { return &MeldCombined{} }

// Definition returns catalog metadata
func (m *MeldCombined) Definition() Definition {
	return Definition{
		ID:          "meld_combined",
		Name:        "Model for End-Stage Liver Disease (Combined MELD)",
		Specialty:   "gastroenterology",
		Description: "MELD, MELD-Na and MELD 3.0 for end-stage liver disease severity and transplant planning",
	}
}

// Evaluate computes the selected MELD variant, rounded and clamped to [6, 40]
func (m *MeldCombined) Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error) {
	version, err := params.Enum("meld_version", "original", "meld_na", "meld_3_0")
	if err != nil {
		return nil, err
	}
	bilirubin, err := params.Float("bilirubin", 0.1, 50.0)
	if err != nil {
		return nil, err
	}
	creatinine, err := params.Float("creatinine", 0.1, 15.0)
	if err != nil {
		return nil, err
	}
	inr, err := params.Float("inr", 0.8, 10.0)
	if err != nil {
		return nil, err
	}
	dialysis, err := params.OptionalYesNo("dialysis_twice_in_week")
	if err != nil {
		return nil, err
	}

	var sodium, albumin float64
	var age int
	var sex string

	if version == "meld_na" || version == "meld_3_0" {
		sodium, err = params.Float("sodium", 120, 160)
		if err != nil {
			return nil, err
		}
	}
	if version == "meld_3_0" {
		albumin, err = params.Float("albumin", 1.0, 6.0)
		if err != nil {
			return nil, err
		}
		age, err = params.Int("age", 12, 120)
		if err != nil {
			return nil, err
		}
		sex, err = params.Enum("sex", "male", "female")
		if err != nil {
			return nil, err
		}
	}

	var score int
	switch version {
	case "original":
		score = meldOriginal(bilirubin, creatinine, inr, dialysis)
	case "meld_na":
		score = meldNa(bilirubin, creatinine, inr, sodium, dialysis)
	case "meld_3_0":
		score = meld30(bilirubin, creatinine, inr, sodium, albumin, age, sex, dialysis)
	}

	stage, description, interpretation := meldInterpretation(score)
	return &domain.ScoreResult{
		Result:           score,
		Unit:             "points",
		Interpretation:   interpretation,
		Stage:            stage,
		StageDescription: description,
	}, nil
}

func meldClampInputs(bilirubin, creatinine, inr float64, dialysis bool) (bili, creat, inrVal float64) {
	bili = math.Max(bilirubin, meldMinBilirubin)
	creat = math.Max(creatinine, meldMinCreatinine)
	inrVal = math.Max(inr, meldMinINR)

	// Dialysis twice in the past week sets creatinine to the 4.0 ceiling
	if dialysis {
		creat = meldMaxCreatinine
	} else {
		creat = math.Min(creat, meldMaxCreatinine)
	}
	return bili, creat, inrVal
}

func meldOriginal(bilirubin, creatinine, inr float64, dialysis bool) int {
	bili, creat, inrVal := meldClampInputs(bilirubin, creatinine, inr, dialysis)

	score := 9.57*math.Log(creat) + 3.78*math.Log(bili) + 11.2*math.Log(inrVal) + 6.43
	return clampScore(int(math.Round(score)), meldMinScore, meldMaxScore)
}

func meldNa(bilirubin, creatinine, inr, sodium float64, dialysis bool) int {
	meld := meldOriginal(bilirubin, creatinine, inr, dialysis)

	na := math.Max(meldMinSodium, math.Min(sodium, meldMaxSodium))

	// Sodium adjustment applies only above MELD 11
	score := float64(meld)
	if meld > 11 {
		score = float64(meld) + 1.32*(137-na) - 0.033*float64(meld)*(137-na)
	}
	return clampScore(int(math.Round(score)), meldMinScore, meldMaxScore)
}

func meld30(bilirubin, creatinine, inr, sodium, albumin float64, age int, sex string, dialysis bool) int {
	bili, creat, inrVal := meldClampInputs(bilirubin, creatinine, inr, dialysis)

	na := math.Max(meldMinSodium, math.Min(sodium, meldMaxSodium))
	alb := math.Max(meldMinAlbumin, math.Min(albumin, meldMaxAlbumin))

	sexCoeff := 1.0
	if sex == "female" {
		sexCoeff = 1.33
	}

	score := 1.33 * sexCoeff * (4.56*math.Log(bili) +
		0.82*(137-na) -
		0.24*(137-na)*math.Log(bili) +
		9.09*math.Log(inrVal) +
		11.14*math.Log(creat) +
		1.85*(meldMaxAlbumin-alb) -
		1.83*(meldMaxAlbumin-alb)*math.Log(creat) +
		6.0)

	return clampScore(int(math.Round(score)), meldMinScore, meldMaxScore)
}

func clampScore(score, min, max int) int {
	if score < min {
		return min
	}
	if score > max {
		return max
	}
	return score
}

func meldInterpretation(score int) (stage, description, interpretation string) {
	switch {
	case score <= 9:
		return "Mild Disease", "Lower mortality risk",
			"Mild liver disease with low 90-day mortality risk (<2%). Generally not considered for liver transplantation unless specific indications present."
	case score <= 14:
		return "Moderate Disease", "Moderate mortality risk",
			"Moderate liver disease with intermediate mortality risk (6-20%). May be considered for liver transplantation evaluation depending on clinical circumstances."
	case score <= 19:
		return "Severe Disease", "High mortality risk",
			"Severe liver disease with high mortality risk (>20%). Strong indication for liver transplantation evaluation. MELD >=15 is generally the threshold for transplant consideration."
	case score <= 29:
		return "Very Severe Disease", "Very high mortality risk",
			"Very severe liver disease with very high mortality risk (>50%). High priority for liver transplantation. Close monitoring and intensive management required."
	default: // 30-40
		return "Critical Disease", "Extremely high mortality risk",
			"Critical liver disease with extremely high mortality risk (>80%). Highest priority for liver transplantation. Consider intensive care management and urgent transplant evaluation."
	}
}
