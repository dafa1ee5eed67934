package batch

import (
	"sort"
	"strings"

	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/domain/types"
)

// sequenceSeparator joins touchpoint types into a sequence key.
const sequenceSeparator = " > "

// TopConvertingSequences mines the distinct touchpoint-type sequences from
// converting results (total conversion value > 0), keeps those occurring at
// least minOccurrences times, and returns them ordered by total revenue
// descending. Result touches are already in timestamp order.
func TopConvertingSequences(results []*model.AttributionResult, minOccurrences int) []types.SequenceStat {
	type accum struct {
		occurrences  int
		totalRevenue float64
	}
	bySequence := make(map[string]*accum)

	for _, res := range results {
		if res == nil || res.TotalConversionValue <= 0 || len(res.Touches) == 0 {
			continue
		}
		seqTypes := make([]string, len(res.Touches))
		for i, t := range res.Touches {
			seqTypes[i] = t.Type
		}
		key := strings.Join(seqTypes, sequenceSeparator)

		a, ok := bySequence[key]
		if !ok {
			a = &accum{}
			bySequence[key] = a
		}
		a.occurrences++
		a.totalRevenue += res.TotalConversionValue
	}

	stats := make([]types.SequenceStat, 0, len(bySequence))
	for seq, a := range bySequence {
		if a.occurrences < minOccurrences {
			continue
		}
		stats = append(stats, types.SequenceStat{
			Sequence:                seq,
			Occurrences:             a.occurrences,
			TotalRevenue:            a.totalRevenue,
			AvgRevenuePerConversion: a.totalRevenue / float64(a.occurrences),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalRevenue != stats[j].TotalRevenue {
			return stats[i].TotalRevenue > stats[j].TotalRevenue
		}
		return stats[i].Sequence < stats[j].Sequence
	})
	return stats
}
