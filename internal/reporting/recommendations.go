package reporting

// RecommendationGroup is a themed set of measures for raising recycling
// rates on site.
type RecommendationGroup struct {
	Category string
	Items    []string
}

// Recommendations returns the static improvement catalogue shown at the end
// of the demo report.
func Recommendations() []RecommendationGroup {
	return []RecommendationGroup{
		{
			Category: "Infrastructure",
			Items: []string{
				"Establish on-site waste sorting facilities",
				"Partner with specialized recycling centers",
				"Install waste compactors to reduce transport costs",
			},
		},
		{
			Category: "Training & Awareness",
			Items: []string{
				"Conduct regular training for construction workers on waste segregation",
				"Display visual guides for proper waste sorting",
				"Implement incentive programs for projects with high recycling rates",
			},
		},
		{
			Category: "Policy & Planning",
			Items: []string{
				"Mandate waste management plans before project approval",
				"Set minimum recycling rate requirements in building codes",
				"Provide tax incentives for using recycled construction materials",
			},
		},
		{
			Category: "Technology",
			Items: []string{
				"Use digital tracking systems for waste streams",
				"Implement AI-based sorting technologies",
				"Adopt Building Information Modeling (BIM) for waste reduction",
			},
		},
	}
}
