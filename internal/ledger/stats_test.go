package ledger

import (
	"testing"

	"scarti/internal/core"
)

func entry(wt core.WasteType, total, recycled float64, loc core.Location, pt core.ProjectType) core.WasteEntry {
	return core.WasteEntry{
		ProjectID:   "P1",
		WasteType:   wt,
		TotalKg:     total,
		RecycledKg:  recycled,
		Location:    loc,
		ProjectType: pt,
	}
}

func TestStatisticsOverallRate(t *testing.T) {
	entries := []core.WasteEntry{
		entry(core.Concrete, 1000, 400, core.Urban, core.Commercial),
		entry(core.Metal, 1000, 800, core.Rural, core.Industrial),
	}
	stats := Statistics(entries)
	if !approx(stats.OverallRate, 0.6) {
		t.Fatalf("overall rate: got %v want 0.6", stats.OverallRate)
	}
	if !approx(stats.TotalWasteKg, 2000) || !approx(stats.TotalRecycledKg, 1200) {
		t.Fatalf("totals: got %v/%v", stats.TotalWasteKg, stats.TotalRecycledKg)
	}
}

func TestStatisticsAllZeroWeights(t *testing.T) {
	entries := []core.WasteEntry{
		entry(core.Concrete, 0, 0, core.Urban, core.Commercial),
		entry(core.Wood, 0, 0, core.Rural, core.Residential),
	}
	stats := Statistics(entries)
	if stats.OverallRate != 0 {
		t.Fatalf("zero-weight collection must yield rate 0, got %v", stats.OverallRate)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	stats := Statistics(nil)
	if stats.OverallRate != 0 || len(stats.ByWasteType) != 0 ||
		len(stats.RateByLocation) != 0 || len(stats.RateByProjectType) != 0 {
		t.Fatalf("empty collection must produce empty statistics, got %+v", stats)
	}
}

func TestStatisticsGroupedMeans(t *testing.T) {
	entries := []core.WasteEntry{
		entry(core.Concrete, 1000, 300, core.Urban, core.Commercial),    // rate .3
		entry(core.Concrete, 1000, 500, core.Suburban, core.Commercial), // rate .5
		entry(core.Metal, 2000, 1800, core.Urban, core.Industrial),      // rate .9
	}
	stats := Statistics(entries)

	concrete := stats.ByWasteType[core.Concrete]
	if !approx(concrete.MeanRate, 0.4) {
		t.Fatalf("concrete mean: got %v want 0.4", concrete.MeanRate)
	}
	if !approx(concrete.TotalKg, 2000) || !approx(concrete.RecycledKg, 800) {
		t.Fatalf("concrete totals: got %+v", concrete)
	}
	if !approx(stats.RateByLocation[core.Urban], 0.6) { // mean of .3 and .9
		t.Fatalf("urban mean: got %v want 0.6", stats.RateByLocation[core.Urban])
	}
	if !approx(stats.RateByProjectType[core.Industrial], 0.9) {
		t.Fatalf("industrial mean: got %v want 0.9", stats.RateByProjectType[core.Industrial])
	}
	// Groups with no entries are absent, not zero.
	if _, ok := stats.RateByLocation[core.Rural]; ok {
		t.Fatalf("rural group should be absent")
	}
	if _, ok := stats.ByWasteType[core.Plastic]; ok {
		t.Fatalf("plastic group should be absent")
	}
}

func TestOpportunitiesGapComputation(t *testing.T) {
	// Concrete: mean rate .40 over 2000 kg against a .85 target.
	entries := []core.WasteEntry{
		entry(core.Concrete, 1000, 300, core.Urban, core.Commercial),
		entry(core.Concrete, 1000, 500, core.Urban, core.Commercial),
	}
	opps := Opportunities(entries, core.Targets{core.Concrete: 0.85})
	if len(opps) != 1 {
		t.Fatalf("expected one opportunity, got %d", len(opps))
	}
	o := opps[0]
	if o.WasteType != core.Concrete {
		t.Fatalf("waste type: got %s", o.WasteType)
	}
	if !approx(o.Gap, 0.45) {
		t.Fatalf("gap: got %v want 0.45", o.Gap)
	}
	if !approx(o.PotentialKg, 900) {
		t.Fatalf("potential: got %v want 900", o.PotentialKg)
	}
}

func TestOpportunitiesSkipsMetTargetsAndMissingTypes(t *testing.T) {
	entries := []core.WasteEntry{
		entry(core.Metal, 1000, 950, core.Urban, core.Commercial), // above target
	}
	targets := core.Targets{
		core.Metal: 0.90,
		core.Wood:  0.70, // no wood entries: must not emit
	}
	if opps := Opportunities(entries, targets); len(opps) != 0 {
		t.Fatalf("expected no opportunities, got %+v", opps)
	}
}

func TestOpportunitiesSortedDescending(t *testing.T) {
	entries := []core.WasteEntry{
		entry(core.Concrete, 1000, 100, core.Urban, core.Commercial), // gap .75 → 750 kg
		entry(core.Metal, 5000, 1000, core.Urban, core.Commercial),   // gap .70 → 3500 kg
		entry(core.Plastic, 100, 10, core.Urban, core.Commercial),    // gap .50 → 50 kg
	}
	opps := Opportunities(entries, core.DefaultTargets())
	if len(opps) != 3 {
		t.Fatalf("expected 3 opportunities, got %d", len(opps))
	}
	for i := 1; i < len(opps); i++ {
		if opps[i].PotentialKg > opps[i-1].PotentialKg {
			t.Fatalf("not sorted descending: %+v", opps)
		}
	}
	if opps[0].WasteType != core.Metal {
		t.Fatalf("largest opportunity should be metal, got %s", opps[0].WasteType)
	}
	// Every emitted gap must be strictly positive.
	for _, o := range opps {
		if o.Gap <= 0 {
			t.Fatalf("non-positive gap emitted: %+v", o)
		}
	}
}

func TestOpportunitiesStableTieOrder(t *testing.T) {
	// Identical potential for concrete and metal; declaration order wins.
	entries := []core.WasteEntry{
		entry(core.Concrete, 1000, 350, core.Urban, core.Commercial), // gap .50 → 500
		entry(core.Metal, 1000, 400, core.Urban, core.Commercial),    // gap .50 → 500
	}
	targets := core.Targets{core.Concrete: 0.85, core.Metal: 0.90}
	opps := Opportunities(entries, targets)
	if len(opps) != 2 {
		t.Fatalf("expected 2 opportunities, got %d", len(opps))
	}
	if !approx(opps[0].PotentialKg, opps[1].PotentialKg) {
		t.Fatalf("expected tie, got %v vs %v", opps[0].PotentialKg, opps[1].PotentialKg)
	}
	if opps[0].WasteType != core.Concrete || opps[1].WasteType != core.Metal {
		t.Fatalf("tie order wrong: %s before %s", opps[0].WasteType, opps[1].WasteType)
	}
}

func TestLedgerStatisticsEndToEnd(t *testing.T) {
	l := newTestLedger(t)
	if err := l.RegisterProject("P1", "Site", core.Urban, core.Commercial); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := l.LogWaste("P1", core.Concrete, 2000, 800); err != nil {
		t.Fatalf("log: %v", err)
	}

	stats := l.OverallStatistics()
	if !approx(stats.OverallRate, 0.4) {
		t.Fatalf("overall rate: got %v want 0.4", stats.OverallRate)
	}
	opps := l.ImprovementOpportunities()
	if len(opps) == 0 || opps[0].WasteType != core.Concrete {
		t.Fatalf("expected concrete opportunity, got %+v", opps)
	}
	if !approx(opps[0].PotentialKg, (0.85-0.4)*2000) {
		t.Fatalf("potential: got %v", opps[0].PotentialKg)
	}
}
