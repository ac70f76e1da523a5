package core

// TypeTotals aggregates weight and mean rate for one waste type.
type TypeTotals struct {
	TotalKg    float64
	RecycledKg float64
	MeanRate   float64
}

// Statistics is the full aggregate view over an entry collection.
// Empty groups are simply absent from the maps.
type Statistics struct {
	OverallRate       float64
	TotalWasteKg      float64
	TotalRecycledKg   float64
	ByWasteType       map[WasteType]TypeTotals
	RateByLocation    map[Location]float64
	RateByProjectType map[ProjectType]float64
}

// ProjectSummary is a compact rollup of a single project's entries.
type ProjectSummary struct {
	ProjectName     string
	Location        Location
	ProjectType     ProjectType
	TotalWasteKg    float64
	TotalRecycledKg float64
	OverallRate     float64
	EntriesCount    int
}

// Opportunity describes the recycling shortfall for one waste type whose
// current mean rate sits below its target.
type Opportunity struct {
	WasteType   WasteType
	CurrentRate float64
	TargetRate  float64
	Gap         float64
	PotentialKg float64
}
