package main

import (
	"os"

	"golang.org/x/sync/errgroup"

	"scarti/internal/cli"
	"scarti/internal/core"
	"scarti/internal/export"
	"scarti/internal/fixture"
	"scarti/internal/ledger"
	applog "scarti/internal/log"
	"scarti/internal/reporting"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger("info")
	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.LogLevel != "info" {
		logger = cli.SetupLogger(cfg.LogLevel)
	}

	out := os.Stdout

	reporting.Section(out, "CONSTRUCTION WASTE RECYCLING ANALYSIS SYSTEM")

	book, err := ledger.New(core.DefaultTargets())
	if err != nil {
		logger.Error("Failed to build ledger", applog.FieldError, err.Error())
		os.Exit(1)
	}

	logger.Info("Generating sample waste data",
		applog.FieldSeed, cfg.FixtureSeed,
		"projects", cfg.FixtureProjects)
	if err := fixture.Populate(book, fixture.Config{Seed: cfg.FixtureSeed, Projects: cfg.FixtureProjects}); err != nil {
		logger.Error("Fixture generation failed", applog.FieldError, err.Error())
		os.Exit(1)
	}

	reporting.Section(out, "RECYCLING STATISTICS")
	stats := book.OverallStatistics()
	reporting.WriteStatistics(out, stats)

	reporting.Section(out, "IMPROVEMENT OPPORTUNITIES")
	opps := book.ImprovementOpportunities()
	reporting.WriteOpportunities(out, opps)

	reporting.Section(out, "RECOMMENDATIONS TO IMPROVE RECYCLING RATES")
	reporting.WriteRecommendations(out)

	reporting.Section(out, "WASTE MANAGEMENT SYSTEM DEMO")
	if err := runDemo(book); err != nil {
		logger.Error("Demo failed", applog.FieldError, err.Error())
		os.Exit(1)
	}

	// The outputs only read ledger snapshots, so they can run side by side.
	var g errgroup.Group
	g.Go(func() error {
		return export.WriteFile(cfg.ExportPath, book.Projects())
	})
	if cfg.EnableCharts {
		g.Go(func() error {
			paths, err := reporting.RenderCharts(cfg.ChartDir, stats, book.Targets())
			if err != nil {
				return err
			}
			for _, p := range paths {
				logger.Info("Chart written", applog.FieldPath, p)
			}
			return nil
		})
	}
	if cfg.EnableXLSX {
		g.Go(func() error {
			if err := reporting.WriteWorkbook(cfg.WorkbookPath, book.Entries(), stats, opps); err != nil {
				return err
			}
			logger.Info("Workbook written", applog.FieldPath, cfg.WorkbookPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Output generation failed", applog.FieldError, err.Error())
		os.Exit(1)
	}

	reporting.Section(out, "Analysis Complete!")
}

// runDemo replays the canonical demo scenario on a fresh project and prints
// its summary.
func runDemo(book *ledger.Ledger) error {
	const demoID = "PRJ-DEMO"
	if err := book.RegisterProject(demoID, "Green Tower Construction", core.Urban, core.Commercial); err != nil {
		return err
	}
	waste := []struct {
		wt       core.WasteType
		total    float64
		recycled float64
	}{
		{core.Concrete, 1500, 900},
		{core.Metal, 500, 400},
		{core.Wood, 800, 480},
	}
	for _, wl := range waste {
		if err := book.LogWaste(demoID, wl.wt, wl.total, wl.recycled); err != nil {
			return err
		}
	}

	summary, err := book.ProjectSummary(demoID)
	if err != nil {
		return err
	}
	reporting.WriteProjectSummary(os.Stdout, summary)
	return nil
}
