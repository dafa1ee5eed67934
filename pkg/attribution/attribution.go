// Package attribution is the public entry point to the multi-touch
// attribution engine. It assigns fractional conversion credit to the
// touchpoints of a customer journey under a selectable model, converts the
// credit into attributed revenue with per-dimension breakdowns, and offers
// batch operations over historical journeys: model comparison, model
// search, sequence mining, lift calculation, and summaries.
//
// A Service is safe for concurrent use; create one and share it.
package attribution

import (
	"context"
	"fmt"
	"time"

	"github.com/mktlab/attrib/internal/batch"
	"github.com/mktlab/attrib/internal/config"
	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/domain/strategy"
	"github.com/mktlab/attrib/internal/engine"
	"github.com/mktlab/attrib/internal/mlscorer"
	"github.com/mktlab/attrib/pkg/logger"
)

// Service wires the engine and batch runner behind one API.
type Service struct {
	engine *engine.Engine
	runner *batch.Runner
	logger logger.Logger
}

// options collects construction-time settings before the engine exists.
type options struct {
	scorer          mlscorer.Scorer
	scorerEndpoint  string
	scorerTimeout   time.Duration
	concurrency     int
	defaultHalfLife float64
	positionFirst   float64
	positionLast    float64
	logger          logger.Logger
}

// Option configures a Service.
type Option func(*options)

// WithScorer injects an ML scorer for data-driven models. Without one,
// data-driven models fall back to linear weights.
func WithScorer(s mlscorer.Scorer) Option {
	return func(o *options) {
		o.scorer = s
	}
}

// WithScorerEndpoint points data-driven models at a remote scoring service.
// Ignored when WithScorer supplies a scorer directly.
func WithScorerEndpoint(url string) Option {
	return func(o *options) {
		o.scorerEndpoint = url
	}
}

// WithScorerTimeout bounds each external scorer call.
func WithScorerTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.scorerTimeout = d
		}
	}
}

// WithDefaultHalfLife sets the half-life, in days, applied to time-decay
// models that do not carry one themselves. Models with an explicit
// half-life are unaffected.
func WithDefaultHalfLife(days float64) Option {
	return func(o *options) {
		if days > 0 {
			o.defaultHalfLife = days
		}
	}
}

// WithPositionDefaults sets the endpoint weights applied to position-based
// models that do not carry their own. Each endpoint is resolved
// independently; a non-positive value keeps the 0.4 default.
func WithPositionDefaults(first, last float64) Option {
	return func(o *options) {
		if first > 0 {
			o.positionFirst = first
		}
		if last > 0 {
			o.positionLast = last
		}
	}
}

// WithMaxConcurrency caps batch fan-out across journeys and models.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New constructs a Service with the given options.
func New(opts ...Option) (*Service, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.scorer == nil && o.scorerEndpoint != "" {
		httpOpts := []mlscorer.HTTPOption{}
		if o.scorerTimeout > 0 {
			httpOpts = append(httpOpts, mlscorer.WithTimeout(o.scorerTimeout))
		}
		s, err := mlscorer.NewHTTPScorer(o.scorerEndpoint, httpOpts...)
		if err != nil {
			return nil, fmt.Errorf("attribution: %w", err)
		}
		o.scorer = s
	}

	engineOpts := []engine.Option{}
	if o.scorer != nil {
		engineOpts = append(engineOpts, engine.WithScorer(o.scorer))
	}
	if o.scorerTimeout > 0 {
		engineOpts = append(engineOpts, engine.WithScorerTimeout(o.scorerTimeout))
	}
	if o.logger != nil {
		engineOpts = append(engineOpts, engine.WithLogger(o.logger))
	}
	if o.defaultHalfLife > 0 {
		engineOpts = append(engineOpts, engine.WithStrategy(model.TimeDecay,
			strategy.NewTimeDecay(strategy.WithDefaultHalfLife(o.defaultHalfLife))))
	}
	if o.positionFirst > 0 || o.positionLast > 0 {
		engineOpts = append(engineOpts, engine.WithStrategy(model.PositionBased,
			strategy.NewPositionBased(strategy.WithPositionDefaults(o.positionFirst, o.positionLast))))
	}
	eng := engine.New(engineOpts...)

	runnerOpts := []batch.Option{}
	if o.concurrency > 0 {
		runnerOpts = append(runnerOpts, batch.WithConcurrency(o.concurrency))
	}
	if o.logger != nil {
		runnerOpts = append(runnerOpts, batch.WithLogger(o.logger))
	}

	svc := &Service{
		engine: eng,
		runner: batch.NewRunner(eng, runnerOpts...),
		logger: o.logger,
	}
	if svc.logger == nil {
		svc.logger = logger.Named("attribution")
	}
	return svc, nil
}

// NewFromConfig constructs a Service from layered configuration
// (defaults, optional ATTRIB_CONFIG YAML file, ATTRIB_ env vars).
func NewFromConfig(ctx context.Context) (*Service, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("attribution: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("attribution: %w", err)
	}

	opts := []Option{
		WithMaxConcurrency(cfg.MaxConcurrency),
		WithScorerTimeout(time.Duration(cfg.ScorerTimeoutMS) * time.Millisecond),
		WithDefaultHalfLife(cfg.DefaultHalfLifeDays),
		WithPositionDefaults(cfg.PositionFirstWeight, cfg.PositionLastWeight),
	}
	if cfg.ScorerEndpoint != "" {
		opts = append(opts, WithScorerEndpoint(cfg.ScorerEndpoint))
	}
	return New(opts...)
}

// Calculate attributes one journey's conversion credit across its touches
// under the given model. See the package documentation for the error and
// empty-result contract.
func (s *Service) Calculate(ctx context.Context, journey Journey, touches []Touch, m Model) (*Result, error) {
	return s.engine.CalculateAttribution(ctx, journey, touches, m)
}

// CompareModels runs one journey through several models, keyed by model
// name. Failed models yield empty results rather than aborting the batch.
func (s *Service) CompareModels(ctx context.Context, journey Journey, touches []Touch, models []Model) map[string]*Result {
	return s.runner.CompareModels(ctx, journey, touches, models)
}

// OptimizeModel evaluates the canonical model battery over historical
// journeys and returns the best-scoring model.
func (s *Service) OptimizeModel(ctx context.Context, journeys []Journey, touchesByJourney map[string][]Touch) (BestModel, error) {
	return s.runner.OptimizeModel(ctx, journeys, touchesByJourney)
}

// TopConvertingSequences mines the highest-revenue converting
// touchpoint-type sequences from a result set.
func (s *Service) TopConvertingSequences(results []*Result, minOccurrences int) []SequenceStat {
	return batch.TopConvertingSequences(results, minOccurrences)
}

// Lift compares per-channel attributed revenue between test and control
// cohorts. The significance field is a heuristic, not a p-value.
func (s *Service) Lift(testResults, controlResults []*Result) []ChannelLift {
	return batch.Lift(testResults, controlResults)
}

// Summarize rolls up a result set into totals and top channels.
func (s *Service) Summarize(results []*Result) Summary {
	return batch.Summarize(results)
}
