package engine

import "github.com/mktlab/attrib/internal/domain/model"

// attributeRevenue converts per-touch weights into per-touch attributed
// revenue and builds the ordered TouchAttribution entries. When the weights
// sum to 1.0 the returned total equals the conversion value within floating
// tolerance.
func attributeRevenue(sorted []model.AttributionTouch, weights []float64, conversionValue float64) ([]model.TouchAttribution, float64) {
	entries := make([]model.TouchAttribution, len(sorted))
	var total float64
	for i, t := range sorted {
		var w float64
		if i < len(weights) {
			w = weights[i]
		}
		revenue := conversionValue * w
		total += revenue
		entries[i] = model.TouchAttribution{
			TouchID:        t.TouchID,
			Type:           t.Type,
			Source:         t.Source,
			Medium:         t.Medium,
			CampaignName:   t.CampaignName,
			Country:        t.Country,
			DeviceCategory: t.DeviceCategory,
			Timestamp:      t.Timestamp,
			Weight:         w,
			Revenue:        revenue,
		}
	}
	return entries, total
}
