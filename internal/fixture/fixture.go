// Package fixture generates deterministic sample waste data for demos and
// tests. It lives outside the ledger: generated records are fed through the
// normal RegisterProject/LogWaste path so every invariant still applies.
package fixture

import (
	"fmt"
	"math/rand"

	"scarti/internal/core"
	"scarti/internal/ledger"
)

// DefaultSeed keeps demo runs reproducible across machines.
const DefaultSeed = 42

type Config struct {
	Seed     int64
	Projects int
}

func DefaultConfig() Config {
	return Config{Seed: DefaultSeed, Projects: 50}
}

// Populate registers cfg.Projects synthetic projects on the ledger and logs
// one entry per waste type for each. Current rates are drawn low, between
// 20% and 60%, so the gap analysis has something to find.
func Populate(l *ledger.Ledger, cfg Config) error {
	if cfg.Projects <= 0 {
		return fmt.Errorf("fixture: project count must be positive, got %d", cfg.Projects)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	locations := core.Locations()
	projectTypes := core.ProjectTypes()

	for i := 1; i <= cfg.Projects; i++ {
		id := fmt.Sprintf("PRJ-%03d", i)
		name := fmt.Sprintf("Site %03d", i)
		loc := locations[rng.Intn(len(locations))]
		pt := projectTypes[rng.Intn(len(projectTypes))]

		if err := l.RegisterProject(id, name, loc, pt); err != nil {
			return fmt.Errorf("fixture: register %s: %w", id, err)
		}
		for _, wt := range core.WasteTypes() {
			total := 500 + rng.Float64()*4500
			rate := 0.20 + rng.Float64()*0.40
			if err := l.LogWaste(id, wt, total, total*rate); err != nil {
				return fmt.Errorf("fixture: log %s/%s: %w", id, wt, err)
			}
		}
	}
	return nil
}
