package batch

import (
	"sort"

	"github.com/mktlab/attrib/internal/domain/model"
	"github.com/mktlab/attrib/internal/domain/types"
)

// topChannelCount bounds the channel list in a summary.
const topChannelCount = 5

// Summarize rolls up a result set: conversion count, total attributed
// revenue, average confidence, and the top channels by revenue with their
// share of the total.
func Summarize(results []*model.AttributionResult) types.Summary {
	summary := types.Summary{TopChannels: []types.ChannelStat{}}

	type accum struct {
		revenue     float64
		conversions int
	}
	byChannel := make(map[string]*accum)

	var confidenceTotal float64
	for _, res := range results {
		if res == nil {
			continue
		}
		summary.TotalResults++
		confidenceTotal += res.Confidence
		if res.TotalConversionValue > 0 {
			summary.TotalConversions++
		}
		summary.TotalRevenue += res.TotalAttributedValue

		for ch, revenue := range res.ChannelAttribution {
			a, ok := byChannel[ch]
			if !ok {
				a = &accum{}
				byChannel[ch] = a
			}
			a.revenue += revenue
			if res.TotalConversionValue > 0 {
				a.conversions++
			}
		}
	}

	if summary.TotalResults > 0 {
		summary.AverageConfidence = confidenceTotal / float64(summary.TotalResults)
	}

	channels := make([]types.ChannelStat, 0, len(byChannel))
	for ch, a := range byChannel {
		stat := types.ChannelStat{
			Channel:     ch,
			Revenue:     a.revenue,
			Conversions: a.conversions,
		}
		if a.conversions > 0 {
			stat.AvgRevenuePerConversion = a.revenue / float64(a.conversions)
		}
		if summary.TotalRevenue > 0 {
			stat.RevenueShare = a.revenue / summary.TotalRevenue
		}
		channels = append(channels, stat)
	}

	sort.Slice(channels, func(i, j int) bool {
		if channels[i].Revenue != channels[j].Revenue {
			return channels[i].Revenue > channels[j].Revenue
		}
		return channels[i].Channel < channels[j].Channel
	})
	if len(channels) > topChannelCount {
		channels = channels[:topChannelCount]
	}
	summary.TopChannels = channels

	return summary
}
