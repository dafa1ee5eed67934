// Package confidence computes a heuristic quality score for a computed
// attribution: how much signal the touch set carries.
package confidence

import (
	"time"

	"github.com/mktlab/attrib/internal/domain/model"
)

// Scoring parameters. The base starts at 0.5; touch count adds up to 0.3
// (capped at 6 touches), click-ID coverage adds up to 0.2, and a very short
// journey with at most two touches costs 0.1.
const (
	base              = 0.5
	perTouchBonus     = 0.05
	touchCountCap     = 0.3
	gclidBonusCap     = 0.2
	shortJourneyPen   = 0.1
	shortJourneyTouch = 2
	shortJourneySpan  = 300 * time.Second
)

// Score computes the confidence for a timestamp-sorted touch set. The
// result is always within [0, 1]. Deterministic and side-effect free.
func Score(touches []model.AttributionTouch) float64 {
	n := len(touches)
	if n == 0 {
		return 0
	}

	score := base

	countBonus := float64(n) * perTouchBonus
	if countBonus > touchCountCap {
		countBonus = touchCountCap
	}
	score += countBonus

	var gclidMatches int
	for _, t := range touches {
		if t.GCLID != "" {
			gclidMatches++
		}
	}
	gclidBonus := float64(gclidMatches) / float64(n) * gclidBonusCap
	if gclidBonus > gclidBonusCap {
		gclidBonus = gclidBonusCap
	}
	score += gclidBonus

	if n <= shortJourneyTouch {
		span := touches[n-1].Timestamp.Sub(touches[0].Timestamp)
		if span < shortJourneySpan {
			score -= shortJourneyPen
		}
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
