// Package reporting renders ledger query results as console text, PNG
// charts and an Excel workbook. It only ever consumes the read-only
// snapshots the ledger hands out; nothing here can mutate the registry.
package reporting

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"scarti/internal/core"
)

const rule = "======================================================================"

// Section prints a banner-delimited section header.
func Section(w io.Writer, title string) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

// WriteStatistics renders the aggregate statistics block.
func WriteStatistics(w io.Writer, stats core.Statistics) {
	fmt.Fprintf(w, "Overall Recycling Rate: %.2f%%\n", stats.OverallRate*100)
	fmt.Fprintf(w, "Total Waste Generated: %.2f kg\n", stats.TotalWasteKg)
	fmt.Fprintf(w, "Total Waste Recycled: %.2f kg\n", stats.TotalRecycledKg)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Recycling Rates by Waste Type ---")
	for _, wt := range core.WasteTypes() {
		tt, ok := stats.ByWasteType[wt]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s: %.2f%%\n", capitalize(wt.String()), tt.MeanRate*100)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Recycling Rates by Location ---")
	for _, loc := range core.Locations() {
		if rate, ok := stats.RateByLocation[loc]; ok {
			fmt.Fprintf(w, "%s: %.2f%%\n", loc, rate*100)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Recycling Rates by Project Type ---")
	for _, pt := range core.ProjectTypes() {
		if rate, ok := stats.RateByProjectType[pt]; ok {
			fmt.Fprintf(w, "%s: %.2f%%\n", pt, rate*100)
		}
	}
}

// WriteOpportunities renders the gap-analysis table, largest recoverable
// weight first.
func WriteOpportunities(w io.Writer, opps []core.Opportunity) {
	if len(opps) == 0 {
		fmt.Fprintln(w, "All waste types meet their recycling targets.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WASTE TYPE\tCURRENT\tTARGET\tGAP\tPOTENTIAL KG")
	for _, o := range opps {
		fmt.Fprintf(tw, "%s\t%.1f%%\t%.1f%%\t%.1f%%\t%.2f\n",
			o.WasteType, o.CurrentRate*100, o.TargetRate*100, o.Gap*100, o.PotentialKg)
	}
	tw.Flush()
}

// WriteProjectSummary renders a single project rollup.
func WriteProjectSummary(w io.Writer, s core.ProjectSummary) {
	fmt.Fprintf(w, "project_name: %s\n", s.ProjectName)
	fmt.Fprintf(w, "location: %s\n", s.Location)
	fmt.Fprintf(w, "project_type: %s\n", s.ProjectType)
	fmt.Fprintf(w, "total_waste_kg: %.2f\n", s.TotalWasteKg)
	fmt.Fprintf(w, "total_recycled_kg: %.2f\n", s.TotalRecycledKg)
	fmt.Fprintf(w, "overall_recycling_rate: %.2f%%\n", s.OverallRate*100)
	fmt.Fprintf(w, "entries_count: %d\n", s.EntriesCount)
}

// WriteRecommendations renders the static improvement catalogue.
func WriteRecommendations(w io.Writer) {
	for _, group := range Recommendations() {
		fmt.Fprintf(w, "\n%s:\n", group.Category)
		for i, item := range group.Items {
			fmt.Fprintf(w, "  %d. %s\n", i+1, item)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
