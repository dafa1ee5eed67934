// Package types contains the report and aggregate types shared between the
// batch operations and the public API.
package types

import "github.com/mktlab/attrib/internal/domain/model"

// SequenceStat describes one distinct converting touchpoint-type sequence
// mined from a result set.
type SequenceStat struct {
	Sequence                string  `json:"sequence"` // types joined with " > " in timestamp order
	Occurrences             int     `json:"occurrences"`
	TotalRevenue            float64 `json:"total_revenue"`
	AvgRevenuePerConversion float64 `json:"avg_revenue_per_conversion"`
}

// ChannelLift compares one channel's attributed revenue between a test and
// a control cohort.
//
// StatisticalSignificance is a simplified heuristic (relative difference
// scaled by a sample-size factor), not a hypothesis test; it must not be
// read as a p-value.
type ChannelLift struct {
	Channel                 string  `json:"channel"`
	TestRevenue             float64 `json:"test_revenue"`
	ControlRevenue          float64 `json:"control_revenue"`
	LiftPercentage          float64 `json:"lift_percentage"`
	StatisticalSignificance float64 `json:"statistical_significance"`
}

// ChannelStat is a per-channel roll-up across a result set.
type ChannelStat struct {
	Channel                 string  `json:"channel"`
	Revenue                 float64 `json:"revenue"`
	Conversions             int     `json:"conversions"`
	AvgRevenuePerConversion float64 `json:"avg_revenue_per_conversion"`
	RevenueShare            float64 `json:"revenue_share"`
}

// Summary aggregates a result set: totals plus the top channels by revenue.
type Summary struct {
	TotalResults      int           `json:"total_results"`
	TotalConversions  int           `json:"total_conversions"`
	TotalRevenue      float64       `json:"total_revenue"`
	AverageConfidence float64       `json:"average_confidence"`
	TopChannels       []ChannelStat `json:"top_channels"`
}

// BestModel is the optimizer's verdict: the winning canonical model and its
// average validation score across the evaluated journeys.
type BestModel struct {
	Model             model.AttributionModel `json:"model"`
	Score             float64                `json:"score"`
	JourneysEvaluated int                    `json:"journeys_evaluated"`
}
