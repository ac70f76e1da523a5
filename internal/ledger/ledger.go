// Package ledger holds the in-memory registry of construction projects and
// their waste entries, and answers the aggregate queries over them.
package ledger

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"scarti/internal/core"
)

// Ledger stores projects and their append-only waste entries. Mutations take
// the write lock; reads take the read lock and return copies, so callers
// never hold references into the registry.
type Ledger struct {
	mu       sync.RWMutex
	projects map[string]*core.Project
	order    []string // registration order, for stable iteration
	targets  core.Targets
	now      func() time.Time
}

// New creates an empty ledger with the given recycling targets. A nil targets
// map falls back to the defaults.
func New(targets core.Targets) (*Ledger, error) {
	if targets == nil {
		targets = core.DefaultTargets()
	}
	if err := targets.Validate(); err != nil {
		return nil, fmt.Errorf("validate targets: %w", err)
	}
	// Copy so later writes by the caller cannot leak in.
	t := make(core.Targets, len(targets))
	for wt, rate := range targets {
		t[wt] = rate
	}
	return &Ledger{
		projects: make(map[string]*core.Project),
		targets:  t,
		now:      time.Now,
	}, nil
}

// RegisterProject creates a project with an empty entry sequence. Fails with
// core.ErrDuplicateProject when the id is already taken.
func (l *Ledger) RegisterProject(id, name string, loc core.Location, pt core.ProjectType) error {
	p := core.Project{
		ID:          id,
		Name:        name,
		Location:    loc,
		ProjectType: pt,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.projects[id]; exists {
		return fmt.Errorf("register project %s: %w", id, core.ErrDuplicateProject)
	}
	p.CreatedAt = l.now()
	l.projects[id] = &p
	l.order = append(l.order, id)

	slog.Info("Project registered",
		"project_id", id,
		"project_name", name,
		"location", string(loc),
		"project_type", string(pt))

	return nil
}

// LogWaste appends a waste entry to the project. Quantities are validated
// before the entry becomes visible; a failed call leaves the ledger unchanged.
func (l *Ledger) LogWaste(projectID string, wt core.WasteType, totalKg, recycledKg float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, exists := l.projects[projectID]
	if !exists {
		return fmt.Errorf("log waste for %s: %w", projectID, core.ErrUnknownProject)
	}

	e := core.WasteEntry{
		ProjectID:   projectID,
		WasteType:   wt,
		TotalKg:     totalKg,
		RecycledKg:  recycledKg,
		LoggedAt:    l.now(),
		Location:    p.Location,
		ProjectType: p.ProjectType,
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("log waste for %s: %w", projectID, err)
	}
	p.Entries = append(p.Entries, e)

	slog.Debug("Waste entry logged",
		"project_id", projectID,
		"waste_type", wt.String(),
		"total_kg", totalKg,
		"recycled_kg", recycledKg)

	return nil
}

// ProjectSummary rolls up a single project's entries. Pure read: calling it
// twice without an intervening LogWaste returns identical results.
func (l *Ledger) ProjectSummary(projectID string) (core.ProjectSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, exists := l.projects[projectID]
	if !exists {
		return core.ProjectSummary{}, fmt.Errorf("summary for %s: %w", projectID, core.ErrUnknownProject)
	}

	var totalKg, recycledKg float64
	for _, e := range p.Entries {
		totalKg += e.TotalKg
		recycledKg += e.RecycledKg
	}
	rate := 0.0
	if totalKg > 0 {
		rate = recycledKg / totalKg
	}
	return core.ProjectSummary{
		ProjectName:     p.Name,
		Location:        p.Location,
		ProjectType:     p.ProjectType,
		TotalWasteKg:    totalKg,
		TotalRecycledKg: recycledKg,
		OverallRate:     rate,
		EntriesCount:    len(p.Entries),
	}, nil
}

// Entries returns a copy of every entry across all projects, in registration
// order and append order within each project.
func (l *Ledger) Entries() []core.WasteEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []core.WasteEntry
	for _, id := range l.order {
		out = append(out, l.projects[id].Entries...)
	}
	return out
}

// Projects returns a deep copy of the registry in registration order.
func (l *Ledger) Projects() []core.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]core.Project, 0, len(l.order))
	for _, id := range l.order {
		p := *l.projects[id]
		p.Entries = append([]core.WasteEntry(nil), p.Entries...)
		out = append(out, p)
	}
	return out
}

// Targets returns a copy of the configured recycling targets.
func (l *Ledger) Targets() core.Targets {
	out := make(core.Targets, len(l.targets))
	for wt, rate := range l.targets {
		out[wt] = rate
	}
	return out
}

// EntriesCount reports the total number of entries across all projects.
func (l *Ledger) EntriesCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, p := range l.projects {
		n += len(p.Entries)
	}
	return n
}

// ProjectIDs returns the registered ids sorted lexically.
func (l *Ledger) ProjectIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := append([]string(nil), l.order...)
	sort.Strings(ids)
	return ids
}
