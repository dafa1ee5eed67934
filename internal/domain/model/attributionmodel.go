package model

// ModelType selects the weighting algorithm for an attribution model.
type ModelType string

// Supported attribution model types.
const (
	FirstTouch    ModelType = "first_touch"
	LastTouch     ModelType = "last_touch"
	Linear        ModelType = "linear"
	TimeDecay     ModelType = "time_decay"
	PositionBased ModelType = "position_based"
	DataDriven    ModelType = "data_driven"
	Custom        ModelType = "custom"
)

// Default model parameters applied when the corresponding field is unset.
const (
	DefaultHalfLifeDays  = 7.0
	DefaultPositionFirst = 0.4
	DefaultPositionLast  = 0.4
)

// AttributionModel is an immutable configuration value object naming an
// algorithm and its parameters.
type AttributionModel struct {
	ModelID           string    `json:"model_id"`
	ModelName         string    `json:"model_name"`
	Type              ModelType `json:"model_type"`
	RequireConversion bool      `json:"require_conversion"`

	// Time-decay parameter; <= 0 means DefaultHalfLifeDays.
	HalfLifeDays float64 `json:"time_decay_half_life_days,omitempty"`

	// Position-based parameters; each endpoint <= 0 means its 0.4 default.
	FirstTouchWeight float64 `json:"position_based_first_weight,omitempty"`
	LastTouchWeight  float64 `json:"position_based_last_weight,omitempty"`

	// Custom model weights keyed by touchpoint type.
	CustomWeights map[string]float64 `json:"custom_weights,omitempty"`

	// Reference passed through to the external scorer for data-driven models.
	MLModelPath string `json:"ml_model_path,omitempty"`
}

// DecayHalfLifeDays returns the configured half-life, falling back to the
// 7-day default when unset.
func (m AttributionModel) DecayHalfLifeDays() float64 {
	if m.HalfLifeDays > 0 {
		return m.HalfLifeDays
	}
	return DefaultHalfLifeDays
}

// PositionWeights returns the first/last touch weights. Each endpoint falls
// back to its 0.4 default independently; non-positive values count as unset,
// so a deliberate zero endpoint weight is not expressible.
func (m AttributionModel) PositionWeights() (first, last float64) {
	first, last = m.FirstTouchWeight, m.LastTouchWeight
	if first <= 0 {
		first = DefaultPositionFirst
	}
	if last <= 0 {
		last = DefaultPositionLast
	}
	return first, last
}
