package batch

import (
	"math"
	"sort"

	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/domain/types"
)

// liftSampleBaseline scales the sample-size factor in the significance
// heuristic: cohorts of 100 results count as a full sample.
const liftSampleBaseline = 100.0

// Lift compares attributed revenue per channel between a test and a control
// cohort. For each channel present in either cohort it reports the relative
// revenue change and a heuristic significance score.
//
// The significance score is min(1, |test-control|/control * sqrt(min(n)/100)):
// a relative difference scaled by a sample-size factor, not a statistical
// hypothesis test. Both lift and significance are 0 when the control revenue
// is 0, and significance is 0 when either cohort is empty, so a channel
// appearing only in the test cohort never divides by zero.
func Lift(testResults, controlResults []*model.AttributionResult) []types.ChannelLift {
	testRevenue := channelRevenue(testResults)
	controlRevenue := channelRevenue(controlResults)

	channels := make(map[string]struct{}, len(testRevenue)+len(controlRevenue))
	for ch := range testRevenue {
		channels[ch] = struct{}{}
	}
	for ch := range controlRevenue {
		channels[ch] = struct{}{}
	}

	nTest := len(testResults)
	nControl := len(controlResults)

	lifts := make([]types.ChannelLift, 0, len(channels))
	for ch := range channels {
		test := testRevenue[ch]
		control := controlRevenue[ch]

		var liftPct, significance float64
		if control != 0 {
			liftPct = (test - control) / control * 100

			if nTest > 0 && nControl > 0 {
				sampleFactor := math.Sqrt(math.Min(float64(nTest), float64(nControl)) / liftSampleBaseline)
				significance = math.Min(1, math.Abs(test-control)/control*sampleFactor)
			}
		}

		lifts = append(lifts, types.ChannelLift{
			Channel:                 ch,
			TestRevenue:             test,
			ControlRevenue:          control,
			LiftPercentage:          liftPct,
			StatisticalSignificance: significance,
		})
	}

	sort.Slice(lifts, func(i, j int) bool { return lifts[i].Channel < lifts[j].Channel })
	return lifts
}

// channelRevenue sums each cohort's attributed revenue per channel.
func channelRevenue(results []*model.AttributionResult) map[string]float64 {
	out := make(map[string]float64)
	for _, res := range results {
		if res == nil {
			continue
		}
		for ch, revenue := range res.ChannelAttribution {
			out[ch] += revenue
		}
	}
	return out
}
