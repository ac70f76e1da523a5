package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"scarti/internal/core"
)

var (
	currentColor = drawing.ColorFromHex("ff6b6b")
	targetColor  = drawing.ColorFromHex("51cf66")
	neutralColor = drawing.ColorFromHex("74c0fc")
)

// RenderCharts writes the three analysis charts as PNG files under dir and
// returns the paths written.
func RenderCharts(dir string, stats core.Statistics, targets core.Targets) ([]string, error) {
	var written []string

	typeBars := typeComparisonBars(stats, targets)
	if err := renderBarChart(filepath.Join(dir, "rates_by_type.png"),
		"Current vs Target Recycling Rates by Waste Type", typeBars); err != nil {
		return written, err
	}
	written = append(written, filepath.Join(dir, "rates_by_type.png"))

	locBars := make([]chart.Value, 0, len(stats.RateByLocation))
	for _, loc := range core.Locations() {
		if rate, ok := stats.RateByLocation[loc]; ok {
			locBars = append(locBars, chart.Value{
				Label: string(loc),
				Value: rate,
				Style: chart.Style{FillColor: neutralColor, StrokeColor: neutralColor},
			})
		}
	}
	if err := renderBarChart(filepath.Join(dir, "rates_by_location.png"),
		"Recycling Rates by Location", locBars); err != nil {
		return written, err
	}
	written = append(written, filepath.Join(dir, "rates_by_location.png"))

	ptBars := make([]chart.Value, 0, len(stats.RateByProjectType))
	for _, pt := range core.ProjectTypes() {
		if rate, ok := stats.RateByProjectType[pt]; ok {
			ptBars = append(ptBars, chart.Value{
				Label: string(pt),
				Value: rate,
				Style: chart.Style{FillColor: neutralColor, StrokeColor: neutralColor},
			})
		}
	}
	if err := renderBarChart(filepath.Join(dir, "rates_by_project_type.png"),
		"Recycling Rates by Project Type", ptBars); err != nil {
		return written, err
	}
	written = append(written, filepath.Join(dir, "rates_by_project_type.png"))

	return written, nil
}

// typeComparisonBars interleaves a current-rate and a target-rate bar per
// waste type, in declaration order.
func typeComparisonBars(stats core.Statistics, targets core.Targets) []chart.Value {
	var bars []chart.Value
	for _, wt := range core.WasteTypes() {
		tt, ok := stats.ByWasteType[wt]
		if !ok {
			continue
		}
		bars = append(bars, chart.Value{
			Label: string(wt),
			Value: tt.MeanRate,
			Style: chart.Style{FillColor: currentColor, StrokeColor: currentColor},
		})
		if target, ok := targets[wt]; ok {
			bars = append(bars, chart.Value{
				Label: string(wt) + " target",
				Value: target,
				Style: chart.Style{FillColor: targetColor, StrokeColor: targetColor},
			})
		}
	}
	return bars
}

func renderBarChart(path, title string, bars []chart.Value) error {
	if len(bars) == 0 {
		return fmt.Errorf("render %s: no data", path)
	}
	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart %s: %w", filepath.Base(path), err)
	}
	return nil
}
