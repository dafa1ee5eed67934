package strategy

import (
	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/mlscorer"
)

// Registry maps model types to their weight strategies. Adding a model type
// is a single Register call, not an edit to a dispatch chain. The registry
// is built once at engine construction and read-only afterwards, so lookups
// need no locking.
type Registry struct {
	strategies map[model.ModelType]WeightStrategy
}

// NewRegistry creates a registry pre-loaded with every built-in strategy.
// The scorer may be nil; the data-driven strategy then reports ErrNoScorer
// and the engine degrades to linear.
func NewRegistry(scorer mlscorer.Scorer) *Registry {
	r := &Registry{strategies: make(map[model.ModelType]WeightStrategy)}
	r.Register(model.FirstTouch, NewFirstTouch())
	r.Register(model.LastTouch, NewLastTouch())
	r.Register(model.Linear, NewLinear())
	r.Register(model.TimeDecay, NewTimeDecay())
	r.Register(model.PositionBased, NewPositionBased())
	r.Register(model.DataDriven, NewDataDriven(scorer))
	r.Register(model.Custom, NewCustom())
	return r
}

// Register binds a strategy to a model type, replacing any existing binding.
func (r *Registry) Register(t model.ModelType, s WeightStrategy) {
	r.strategies[t] = s
}

// Lookup returns the strategy for a model type.
func (r *Registry) Lookup(t model.ModelType) (WeightStrategy, bool) {
	s, ok := r.strategies[t]
	return s, ok
}
