package ledger

import (
	"sort"

	"scarti/internal/core"
)

// groupMeanRate partitions entries by the extracted key and returns the
// arithmetic mean recycling rate per group. Groups with no entries never
// appear in the result.
func groupMeanRate[K comparable](entries []core.WasteEntry, key func(core.WasteEntry) K) map[K]float64 {
	sums := make(map[K]float64)
	counts := make(map[K]int)
	for _, e := range entries {
		k := key(e)
		sums[k] += e.Rate()
		counts[k]++
	}
	out := make(map[K]float64, len(sums))
	for k, sum := range sums {
		out[k] = sum / float64(counts[k])
	}
	return out
}

// Statistics computes the aggregate view over an arbitrary entry collection.
// The overall rate is weight-weighted (Σrecycled/Σtotal, 0 when Σtotal is 0);
// the grouped rates are plain means of per-entry rates.
func Statistics(entries []core.WasteEntry) core.Statistics {
	stats := core.Statistics{
		ByWasteType:       make(map[core.WasteType]core.TypeTotals),
		RateByLocation:    groupMeanRate(entries, func(e core.WasteEntry) core.Location { return e.Location }),
		RateByProjectType: groupMeanRate(entries, func(e core.WasteEntry) core.ProjectType { return e.ProjectType }),
	}

	typeRates := groupMeanRate(entries, func(e core.WasteEntry) core.WasteType { return e.WasteType })
	for _, e := range entries {
		stats.TotalWasteKg += e.TotalKg
		stats.TotalRecycledKg += e.RecycledKg
		tt := stats.ByWasteType[e.WasteType]
		tt.TotalKg += e.TotalKg
		tt.RecycledKg += e.RecycledKg
		stats.ByWasteType[e.WasteType] = tt
	}
	for wt, rate := range typeRates {
		tt := stats.ByWasteType[wt]
		tt.MeanRate = rate
		stats.ByWasteType[wt] = tt
	}
	if stats.TotalWasteKg > 0 {
		stats.OverallRate = stats.TotalRecycledKg / stats.TotalWasteKg
	}
	return stats
}

// Opportunities finds every waste type whose mean recycling rate falls short
// of its target. Types without entries are skipped. The result is sorted by
// recoverable weight descending; ties keep waste-type declaration order.
func Opportunities(entries []core.WasteEntry, targets core.Targets) []core.Opportunity {
	typeRates := groupMeanRate(entries, func(e core.WasteEntry) core.WasteType { return e.WasteType })

	totals := make(map[core.WasteType]float64)
	for _, e := range entries {
		totals[e.WasteType] += e.TotalKg
	}

	var out []core.Opportunity
	for _, wt := range core.WasteTypes() {
		target, configured := targets[wt]
		if !configured {
			continue
		}
		current, hasEntries := typeRates[wt]
		if !hasEntries {
			continue
		}
		gap := target - current
		if gap <= 0 {
			continue
		}
		out = append(out, core.Opportunity{
			WasteType:   wt,
			CurrentRate: current,
			TargetRate:  target,
			Gap:         gap,
			PotentialKg: gap * totals[wt],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PotentialKg > out[j].PotentialKg
	})
	return out
}

// OverallStatistics computes Statistics over the ledger's full entry set.
func (l *Ledger) OverallStatistics() core.Statistics {
	return Statistics(l.Entries())
}

// ImprovementOpportunities computes Opportunities over the ledger's full
// entry set against its configured targets.
func (l *Ledger) ImprovementOpportunities() []core.Opportunity {
	return Opportunities(l.Entries(), l.targets)
}
