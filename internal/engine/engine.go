// Package engine orchestrates single-journey attribution: input validation,
// touch ordering, strategy dispatch, revenue attribution, confidence
// scoring, and breakdown aggregation.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mktlab/attrib/internal/domain/confidence"
	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/domain/strategy"
	"github.com/mktlab/attrib/internal/mlscorer"
	"github.com/mktlab/attrib/pkg/logger"
	"github.com/mktlab/attrib/pkg/metrics"
)

// Default engine configuration constants.
const (
	defaultScorerTimeout = 2 * time.Second
	fallbackHalfLifeDays = 7.0
)

// Engine computes attribution for one journey at a time. It holds no
// mutable state after construction, so a single Engine is safe for any
// number of concurrent callers.
type Engine struct {
	registry      *strategy.Registry
	scorer        mlscorer.Scorer
	scorerTimeout time.Duration

	// Extra strategy registrations applied after the registry is built.
	extra map[model.ModelType]strategy.WeightStrategy

	// Fallback strategies for the data-driven chain.
	linear        strategy.WeightStrategy
	decayFallback strategy.WeightStrategy

	logger logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithScorer injects the external ML scorer used by data-driven models.
func WithScorer(s mlscorer.Scorer) Option {
	return func(e *Engine) {
		e.scorer = s
	}
}

// WithScorerTimeout bounds each external scorer call.
func WithScorerTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.scorerTimeout = d
		}
	}
}

// WithStrategy registers an additional or replacement strategy for a model
// type.
func WithStrategy(t model.ModelType, s strategy.WeightStrategy) Option {
	return func(e *Engine) {
		e.extra[t] = s
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New constructs an Engine with default configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		scorerTimeout: defaultScorerTimeout,
		extra:         make(map[model.ModelType]strategy.WeightStrategy),
		linear:        strategy.NewLinear(),
		decayFallback: strategy.NewTimeDecay(strategy.WithHalfLife(fallbackHalfLifeDays)),
		logger:        logger.Named("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}

	// The registry is built after options so the data-driven strategy sees
	// the injected scorer; explicit registrations win last.
	e.registry = strategy.NewRegistry(e.scorer)
	for t, s := range e.extra {
		e.registry.Register(t, s)
	}
	return e
}

// CalculateAttribution assigns fractional conversion credit to each touch
// under the given model and returns the assembled result with derived
// breakdowns. Inputs are never mutated.
//
// Contract violations (no touches, malformed touch data, unknown model
// type) return errors. A non-converted journey under a require-conversion
// model returns an empty result, not an error. External scorer failures are
// recovered internally and never surface.
func (e *Engine) CalculateAttribution(ctx context.Context, journey model.CustomerJourney, touches []model.AttributionTouch, m model.AttributionModel) (*model.AttributionResult, error) {
	start := time.Now()

	if len(touches) == 0 {
		metrics.RecordValidationError()
		return nil, ErrNoTouchpoints
	}
	if err := journey.Validate(); err != nil {
		metrics.RecordValidationError()
		return nil, fmt.Errorf("journey %s: %w", journey.JourneyID, err)
	}
	for _, t := range touches {
		if err := t.Validate(); err != nil {
			metrics.RecordValidationError()
			return nil, fmt.Errorf("touch %s: %w", t.TouchID, err)
		}
	}

	if m.RequireConversion && !journey.Converted {
		metrics.RecordEmptyResult()
		return model.NewEmptyResult(journey, m), nil
	}

	sorted := model.SortTouches(touches)

	weights, err := e.weights(ctx, journey, sorted, m)
	if err != nil {
		return nil, err
	}

	entries, total := attributeRevenue(sorted, weights, journey.ConversionValue)
	result := &model.AttributionResult{
		JourneyID:            journey.JourneyID,
		CustomerID:           journey.CustomerID,
		ModelID:              m.ModelID,
		TotalConversionValue: journey.ConversionValue,
		TotalAttributedValue: total,
		Confidence:           confidence.Score(sorted),
		Touches:              entries,
	}
	aggregate(result)

	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}
	metrics.RecordWeightSumDeviation(math.Abs(weightSum - 1.0))
	metrics.RecordJourneyAttributed(string(m.Type))
	metrics.RecordAttributionLatency(float64(time.Since(start).Milliseconds()))

	return result, nil
}

// weights dispatches to the strategy for the model type. For data-driven
// models the engine owns the fallback chain: no configured scorer degrades
// to linear, and a scorer failure at inference time degrades to time-decay
// with a 7-day half-life.
func (e *Engine) weights(ctx context.Context, journey model.CustomerJourney, sorted []model.AttributionTouch, m model.AttributionModel) ([]float64, error) {
	if m.Type == model.DataDriven {
		return e.dataDrivenWeights(ctx, journey, sorted, m)
	}

	s, ok := e.registry.Lookup(m.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, m.Type)
	}
	return s.Weights(ctx, journey, sorted, m)
}

func (e *Engine) dataDrivenWeights(ctx context.Context, journey model.CustomerJourney, sorted []model.AttributionTouch, m model.AttributionModel) ([]float64, error) {
	if e.scorer == nil {
		metrics.RecordScorerFallback("no_scorer")
		e.logger.Debug(ctx, "no scorer configured, using linear weights",
			logger.String("journeyID", journey.JourneyID))
		return e.linear.Weights(ctx, journey, sorted, m)
	}

	s, ok := e.registry.Lookup(model.DataDriven)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedModel, model.DataDriven)
	}

	scorerCtx, cancel := context.WithTimeout(ctx, e.scorerTimeout)
	defer cancel()

	scoreStart := time.Now()
	weights, err := s.Weights(scorerCtx, journey, sorted, m)
	metrics.RecordScorerLatency(float64(time.Since(scoreStart).Milliseconds()))

	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			// The caller gave up; do not substitute a result they will
			// never read.
			return nil, ctx.Err()
		}
		metrics.RecordScorerFallback("scorer_error")
		e.logger.Warn(ctx, "scorer failed, falling back to time-decay",
			logger.String("journeyID", journey.JourneyID),
			logger.Error(err),
		)
		return e.decayFallback.Weights(ctx, journey, sorted, m)
	}
	return weights, nil
}
