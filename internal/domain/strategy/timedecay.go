package strategy

import (
	"context"
	"math"

	"github.com/mktlab/attrib/internal/domain/model"
)

const secondsPerDay = 86400.0

// TimeDecayStrategy weights touches by exponential recency: a touch loses
// half its raw weight every half-life period before the conversion. The
// last sorted touch is treated as the converting touch, so its raw weight
// is exactly 1.0.
type TimeDecayStrategy struct {
	// halfLifeOverride, when positive, wins over the model parameter.
	// The engine uses this for the fixed 7-day scorer fallback.
	halfLifeOverride float64

	// defaultHalfLife applies when the model leaves its half-life unset.
	defaultHalfLife float64
}

// TimeDecayOption applies a configuration option to the TimeDecayStrategy.
type TimeDecayOption func(*TimeDecayStrategy)

// WithHalfLife pins the half-life in days regardless of model configuration.
func WithHalfLife(days float64) TimeDecayOption {
	return func(s *TimeDecayStrategy) {
		if days > 0 {
			s.halfLifeOverride = days
		}
	}
}

// WithDefaultHalfLife replaces the 7-day fallback used for models that do
// not set a half-life themselves. Models with an explicit half-life are
// unaffected.
func WithDefaultHalfLife(days float64) TimeDecayOption {
	return func(s *TimeDecayStrategy) {
		if days > 0 {
			s.defaultHalfLife = days
		}
	}
}

// NewTimeDecay creates a time-decay strategy with configuration options.
func NewTimeDecay(opts ...TimeDecayOption) *TimeDecayStrategy {
	s := &TimeDecayStrategy{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights computes 2^(-days_before_conversion / half_life) per touch and
// normalizes by the sum. Raw weight strictly decreases with distance from
// the conversion for any positive half-life.
func (s *TimeDecayStrategy) Weights(_ context.Context, _ model.CustomerJourney, touches []model.AttributionTouch, m model.AttributionModel) ([]float64, error) {
	n := len(touches)
	if n == 0 {
		return []float64{}, nil
	}
	if n == 1 {
		return []float64{1.0}, nil
	}

	halfLife := s.halfLifeOverride
	if halfLife <= 0 {
		halfLife = m.HalfLifeDays
	}
	if halfLife <= 0 {
		halfLife = s.defaultHalfLife
	}
	if halfLife <= 0 {
		halfLife = model.DefaultHalfLifeDays
	}

	conversionTime := touches[n-1].Timestamp
	raw := make([]float64, n)
	for i, t := range touches {
		daysBefore := conversionTime.Sub(t.Timestamp).Seconds() / secondsPerDay
		raw[i] = math.Exp2(-daysBefore / halfLife)
	}

	weights, ok := normalize(raw)
	if !ok {
		// Unreachable for finite timestamps since 2^x is positive, but
		// keep the zero-total contract uniform across strategies.
		share := 1.0 / float64(n)
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = share
		}
	}
	return weights, nil
}
