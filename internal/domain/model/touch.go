package model

import (
	"sort"
	"time"
)

// AttributionTouch is a single recorded marketing interaction within a
// journey. Touches are inputs only; the engine never writes to them and
// reports weights and revenue on separate TouchAttribution records.
type AttributionTouch struct {
	TouchID        string    `json:"touch_id"`
	Timestamp      time.Time `json:"timestamp"`
	Type           string    `json:"touchpoint_type"` // e.g. "click", "impression"
	Source         string    `json:"source"`
	Medium         string    `json:"medium"`
	CampaignName   string    `json:"campaign_name,omitempty"`
	GCLID          string    `json:"gclid,omitempty"`
	Country        string    `json:"country,omitempty"`
	DeviceCategory string    `json:"device_category,omitempty"`
}

// Validate checks the touch against the engine's input contract.
func (t AttributionTouch) Validate() error {
	if t.Timestamp.IsZero() {
		return ErrMissingTimestamp
	}
	return nil
}

// Channel returns the "source/medium" aggregation key, or "unknown" when
// either half is missing.
func (t AttributionTouch) Channel() string {
	if t.Source == "" || t.Medium == "" {
		return UnknownChannel
	}
	return t.Source + "/" + t.Medium
}

// UnknownChannel is the channel key used for touches missing source or medium.
const UnknownChannel = "unknown"

// SortTouches returns a copy of touches ordered by timestamp ascending.
// The sort is stable, so touches sharing a timestamp keep their input order.
// The caller's slice is left untouched.
func SortTouches(touches []AttributionTouch) []AttributionTouch {
	sorted := make([]AttributionTouch, len(touches))
	copy(sorted, touches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}
