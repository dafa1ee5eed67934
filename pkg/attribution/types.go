package attribution

import (
	"github.com/google/uuid"

	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/domain/types"
)

// Domain types re-exported for consumers. The engine's own packages stay
// internal; everything a caller needs is reachable from here.
type (
	// Journey is one customer's path up to a possible conversion.
	Journey = model.CustomerJourney
	// Touch is one recorded marketing interaction.
	Touch = model.AttributionTouch
	// Model is an attribution model configuration.
	Model = model.AttributionModel
	// ModelType selects the weighting algorithm.
	ModelType = model.ModelType
	// Result is the outcome of attributing one journey under one model.
	Result = model.AttributionResult
	// TouchAttribution is the per-touch credit record inside a Result.
	TouchAttribution = model.TouchAttribution

	// SequenceStat is one mined converting sequence.
	SequenceStat = types.SequenceStat
	// ChannelLift is one channel's test-vs-control comparison.
	ChannelLift = types.ChannelLift
	// ChannelStat is one channel's roll-up inside a Summary.
	ChannelStat = types.ChannelStat
	// Summary aggregates a result set.
	Summary = types.Summary
	// BestModel is the optimizer's verdict.
	BestModel = types.BestModel
)

// Model types.
const (
	FirstTouch    = model.FirstTouch
	LastTouch     = model.LastTouch
	Linear        = model.Linear
	TimeDecay     = model.TimeDecay
	PositionBased = model.PositionBased
	DataDriven    = model.DataDriven
	Custom        = model.Custom
)

// NewModel builds a model configuration with a generated ID. Parameters
// beyond the type keep their zero values, which the engine replaces with
// the documented defaults (7-day half-life, 0.4/0.4 position weights).
func NewModel(name string, t ModelType) Model {
	return Model{
		ModelID:   uuid.NewString(),
		ModelName: name,
		Type:      t,
	}
}
