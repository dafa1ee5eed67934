// Package model contains the attribution domain types passed between layers.
package model

// CustomerJourney describes one customer's path up to (and including) a
// possible conversion. Journeys arrive fully formed from the ingestion side
// and are consumed read-only.
type CustomerJourney struct {
	JourneyID         string  `json:"journey_id"`
	CustomerID        string  `json:"customer_id"`
	Converted         bool    `json:"converted"`
	ConversionValue   float64 `json:"conversion_value"`
	JourneyLengthDays float64 `json:"journey_length_days"`
}

// Validate checks the journey against the engine's input contract.
func (j CustomerJourney) Validate() error {
	if j.ConversionValue < 0 {
		return ErrNegativeConversionValue
	}
	return nil
}
