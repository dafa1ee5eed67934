package model

import "time"

// TouchAttribution is the per-touch output record: the credit one touch
// received under one model, denormalized with the dimensions the
// aggregators and batch analyzers need. It references the input touch by ID
// instead of aliasing it, so the same touch slice can safely feed several
// concurrent calculations.
type TouchAttribution struct {
	TouchID        string    `json:"touch_id"`
	Type           string    `json:"touchpoint_type"`
	Source         string    `json:"source"`
	Medium         string    `json:"medium"`
	CampaignName   string    `json:"campaign_name,omitempty"`
	Country        string    `json:"country,omitempty"`
	DeviceCategory string    `json:"device_category,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	Weight         float64   `json:"attribution_weight"`
	Revenue        float64   `json:"revenue_attributed"`
}

// Channel returns the "source/medium" aggregation key, or "unknown" when
// either half is missing.
func (t TouchAttribution) Channel() string {
	if t.Source == "" || t.Medium == "" {
		return UnknownChannel
	}
	return t.Source + "/" + t.Medium
}

// AttributionResult is the outcome of attributing one journey under one
// model. Built once per calculation and never mutated after return.
type AttributionResult struct {
	JourneyID            string  `json:"customer_journey_id"`
	CustomerID           string  `json:"customer_id"`
	ModelID              string  `json:"attribution_model_id"`
	TotalConversionValue float64 `json:"total_conversion_value"`
	TotalAttributedValue float64 `json:"total_attributed_value"`
	Confidence           float64 `json:"attribution_confidence"`

	// Touches holds the per-touch entries in timestamp order.
	Touches []TouchAttribution `json:"touch_attributions"`

	// Derived breakdowns, keyed as described on each field. Buckets sum
	// revenue_attributed; touches missing the relevant optional attribute
	// are skipped.
	ChannelAttribution  map[string]float64 `json:"channel_attribution"`  // "source/medium" or "unknown"
	CampaignAttribution map[string]float64 `json:"campaign_attribution"` // campaign name
	AttributionByDay    map[string]float64 `json:"attribution_by_day"`   // YYYY-MM-DD
	AttributionByHour   map[string]float64 `json:"attribution_by_hour"`  // "0".."23"
	LocationAttribution map[string]float64 `json:"location_attribution"` // country
	DeviceAttribution   map[string]float64 `json:"device_attribution"`   // device category
}

// NewEmptyResult builds the zero-credit result returned for non-converted
// journeys under a require-conversion model, and substituted for failed
// units in batch operations. Maps are initialized so consumers can range
// and serialize without nil checks.
func NewEmptyResult(journey CustomerJourney, m AttributionModel) *AttributionResult {
	return &AttributionResult{
		JourneyID:           journey.JourneyID,
		CustomerID:          journey.CustomerID,
		ModelID:             m.ModelID,
		Touches:             []TouchAttribution{},
		ChannelAttribution:  map[string]float64{},
		CampaignAttribution: map[string]float64{},
		AttributionByDay:    map[string]float64{},
		AttributionByHour:   map[string]float64{},
		LocationAttribution: map[string]float64{},
		DeviceAttribution:   map[string]float64{},
	}
}
