// Package export serializes the project registry to the one-shot JSON
// document consumed by external tooling.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"scarti/internal/core"
)

type (
	// entryRecord is the flat wire form of a waste entry.
	entryRecord struct {
		Date          string  `json:"date"`
		WasteType     string  `json:"waste_type"`
		TotalKg       float64 `json:"total_kg"`
		RecycledKg    float64 `json:"recycled_kg"`
		RecyclingRate float64 `json:"recycling_rate"`
	}

	projectRecord struct {
		Name         string        `json:"name"`
		Location     string        `json:"location"`
		ProjectType  string        `json:"project_type"`
		WasteEntries []entryRecord `json:"waste_entries"`
		CreatedAt    string        `json:"created_at"`
	}
)

// Write serializes the registry as an id-keyed JSON object, indented for
// readability like the document the reporting tools expect.
func Write(w io.Writer, projects []core.Project) error {
	doc := make(map[string]projectRecord, len(projects))
	for _, p := range projects {
		entries := make([]entryRecord, 0, len(p.Entries))
		for _, e := range p.Entries {
			entries = append(entries, entryRecord{
				Date:          e.LoggedAt.Format(time.RFC3339),
				WasteType:     e.WasteType.String(),
				TotalKg:       e.TotalKg,
				RecycledKg:    e.RecycledKg,
				RecyclingRate: e.Rate(),
			})
		}
		doc[p.ID] = projectRecord{
			Name:         p.Name,
			Location:     string(p.Location),
			ProjectType:  string(p.ProjectType),
			WasteEntries: entries,
			CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return nil
}

// WriteFile writes the registry document to path, creating or truncating it.
func WriteFile(path string, projects []core.Project) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := Write(f, projects); err != nil {
		return err
	}

	slog.Info("Registry exported", "path", path, "projects", len(projects))
	return nil
}
