package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Concrete WasteType = "concrete"
	Metal    WasteType = "metal"
	Wood     WasteType = "wood"
	Plastic  WasteType = "plastic"
	Mixed    WasteType = "mixed"
)

const (
	Urban    Location = "Urban"
	Suburban Location = "Suburban"
	Rural    Location = "Rural"
)

const (
	Residential ProjectType = "Residential"
	Commercial  ProjectType = "Commercial"
	Industrial  ProjectType = "Industrial"
)

type (
	WasteType   string
	Location    string
	ProjectType string

	WasteEntry struct {
		ProjectID   string
		WasteType   WasteType
		TotalKg     float64
		RecycledKg  float64
		LoggedAt    time.Time
		Location    Location
		ProjectType ProjectType
	}

	Project struct {
		ID          string
		Name        string
		Location    Location
		ProjectType ProjectType
		Entries     []WasteEntry
		CreatedAt   time.Time
	}

	// Targets maps each waste type to its recycling-rate target in [0,1].
	// Immutable once constructed; the ledger never writes to it.
	Targets map[WasteType]float64
)

var (
	ErrDuplicateProject   = errors.New("project already registered")
	ErrUnknownProject     = errors.New("project not found")
	ErrInvalidQuantity    = errors.New("invalid waste quantity")
	ErrInvalidWasteType   = errors.New("invalid waste type")
	ErrInvalidLocation    = errors.New("invalid location")
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrEmptyProjectID     = errors.New("empty project id")
	ErrEmptyProjectName   = errors.New("empty project name")
	ErrInvalidTarget      = errors.New("target rate must be in [0,1]")
)

// WasteTypes returns all waste types in declaration order. The order matters:
// opportunity ties are broken by it.
func WasteTypes() []WasteType {
	return []WasteType{Concrete, Metal, Wood, Plastic, Mixed}
}

func Locations() []Location {
	return []Location{Urban, Suburban, Rural}
}

func ProjectTypes() []ProjectType {
	return []ProjectType{Residential, Commercial, Industrial}
}

func (wt WasteType) String() string { return string(wt) }

func (wt WasteType) IsValid() bool {
	switch wt {
	case Concrete, Metal, Wood, Plastic, Mixed:
		return true
	default:
		return false
	}
}

func (l Location) IsValid() bool {
	switch l {
	case Urban, Suburban, Rural:
		return true
	default:
		return false
	}
}

func (pt ProjectType) IsValid() bool {
	switch pt {
	case Residential, Commercial, Industrial:
		return true
	default:
		return false
	}
}

// Rate returns the recycling rate of the entry. A zero-weight entry has
// rate 0 by convention, never a division error.
func (e WasteEntry) Rate() float64 {
	if e.TotalKg == 0 {
		return 0
	}
	return e.RecycledKg / e.TotalKg
}

func (e WasteEntry) Validate() error {
	if !e.WasteType.IsValid() {
		return ErrInvalidWasteType
	}
	if e.TotalKg < 0 || e.RecycledKg < 0 || e.RecycledKg > e.TotalKg {
		return ErrInvalidQuantity
	}
	return nil
}

func (p Project) Validate() error {
	if len(strings.TrimSpace(p.ID)) == 0 {
		return ErrEmptyProjectID
	}
	if len(strings.TrimSpace(p.Name)) == 0 {
		return ErrEmptyProjectName
	}
	if !p.Location.IsValid() {
		return ErrInvalidLocation
	}
	if !p.ProjectType.IsValid() {
		return ErrInvalidProjectType
	}
	return nil
}

func (t Targets) Validate() error {
	for wt, rate := range t {
		if !wt.IsValid() {
			return ErrInvalidWasteType
		}
		if rate < 0 || rate > 1 {
			return ErrInvalidTarget
		}
	}
	return nil
}

// DefaultTargets returns the standard recycling target per waste type.
func DefaultTargets() Targets {
	return Targets{
		Concrete: 0.85,
		Metal:    0.90,
		Wood:     0.70,
		Plastic:  0.60,
		Mixed:    0.50,
	}
}
