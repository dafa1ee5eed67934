package engine

import (
	"strconv"

	"github.com/mktlab/attrib/internal/domain/model"
)

// dayKeyLayout formats the attribution-by-day bucket key.
const dayKeyLayout = "2006-01-02"

// aggregate derives the five breakdown mappings from the per-touch entries
// in a single pass, summing attributed revenue into each bucket. Touches
// missing an optional attribute (campaign, country, device) are skipped for
// that breakdown only. Timestamps bucket in UTC.
func aggregate(result *model.AttributionResult) {
	result.ChannelAttribution = make(map[string]float64)
	result.CampaignAttribution = make(map[string]float64)
	result.AttributionByDay = make(map[string]float64)
	result.AttributionByHour = make(map[string]float64)
	result.LocationAttribution = make(map[string]float64)
	result.DeviceAttribution = make(map[string]float64)

	for _, entry := range result.Touches {
		result.ChannelAttribution[entry.Channel()] += entry.Revenue

		if entry.CampaignName != "" {
			result.CampaignAttribution[entry.CampaignName] += entry.Revenue
		}

		ts := entry.Timestamp.UTC()
		result.AttributionByDay[ts.Format(dayKeyLayout)] += entry.Revenue
		result.AttributionByHour[strconv.Itoa(ts.Hour())] += entry.Revenue

		if entry.Country != "" {
			result.LocationAttribution[entry.Country] += entry.Revenue
		}
		if entry.DeviceCategory != "" {
			result.DeviceAttribution[entry.DeviceCategory] += entry.Revenue
		}
	}
}
