package scores

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clinical-score-server/internal/domain"
)

// Definition describes a registered calculator for the catalog endpoint
type Definition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Specialty   string `json:"specialty"`
	Description string `json:"description"`
}

// Calculator is implemented by every clinical score. Evaluate is a pure
// function over validated parameters: identical inputs always produce
// identical results, and no calculator holds mutable state.
type Calculator interface {
	Definition() Definition
	Evaluate(ctx context.Context, params domain.Params) (*domain.ScoreResult, error)
}

// Registry maps score identifiers to calculator implementations. The set of
// calculators is fixed at construction time; Registry is safe for concurrent
// use because nothing is mutated after New returns.
type Registry struct {
	logger      *logrus.Logger
	calculators map[string]Calculator
}

// New builds the registry with every available calculator
func New(logger *logrus.Logger) *Registry {
	r := &Registry{
		logger:      logger,
		calculators: make(map[string]Calculator),
	}

	for _, calc := range []Calculator{
		NewCentorScore(),
		NewChads2Score(),
		NewEsusCriteria(),
		NewGraceACSRisk(),
		NewGuptaMICA(),
		NewHCTCI(),
		NewImpedeVTE(),
		NewLDLCalculated(),
		NewMacochaScore(),
		NewMayoDAI(),
		NewMeldCombined(),
		NewMontrealIBD(),
		NewNews2(),
		NewPhoenixSepsisScore(),
		NewRomeIVRumination(),
		NewVacoIndex(),
		NewVillaltaScore(),
		NewWintersFormula(),
		NewWisconsinCriteria(),
	} {
		r.register(calc)
	}

	logger.WithField("calculator_count", len(r.calculators)).Info("Initialized score registry")
	return r
}

func (r *Registry) register(calc Calculator) {
	def := calc.Definition()
	if _, exists := r.calculators[def.ID]; exists {
		panic(fmt.Sprintf("duplicate calculator registration: %s", def.ID))
	}
	r.calculators[def.ID] = calc
}

// Calculate resolves a score identifier and evaluates the calculator with the
// given parameters. A panic inside a calculator is recovered and reported as
// a CalculationError so one bad request cannot take the process down.
func (r *Registry) Calculate(ctx context.Context, scoreID string, params domain.Params) (result *domain.ScoreResult, err error) {
	calc, ok := r.calculators[scoreID]
	if !ok {
		return nil, &domain.UnknownScoreError{ScoreID: scoreID}
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.WithFields(logrus.Fields{
				"score_id": scoreID,
				"panic":    rec,
			}).Error("Calculator panicked")
			result = nil
			err = domain.NewCalculationError("calculation failed for %s", scoreID)
		}
	}()

	start := time.Now()
	result, err = calc.Evaluate(ctx, params)

	entry := r.logger.WithFields(logrus.Fields{
		"score_id":    scoreID,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Debug("Score calculation failed")
		return nil, err
	}
	entry.Debug("Score calculation completed")
	return result, nil
}

// Get returns the calculator registered for a score identifier
func (r *Registry) Get(scoreID string) (Calculator, bool) {
	calc, ok := r.calculators[scoreID]
	return calc, ok
}

// List returns the definitions of all registered calculators sorted by ID
func (r *Registry) List() []Definition {
	defs := make([]Definition, 0, len(r.calculators))
	for _, calc := range r.calculators {
		defs = append(defs, calc.Definition())
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}
