package models

// Category is the coarse product group a product is classified into
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFood        Category = "food"
	CategoryCosmetics   Category = "cosmetics"
	CategoryClothing    Category = "clothing"
	CategoryToys        Category = "toys"
)

// ScoreRange is a half-open integer range [Low, High)
type ScoreRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Contains reports whether v lies in [Low, High)
func (r ScoreRange) Contains(v int) bool {
	return v >= r.Low && v < r.High
}

// CategoryProfile describes a category's packaging priorities and eco score bounds
type CategoryProfile struct {
	Name                Category   `json:"name"`
	PackagingPriorities []string   `json:"packaging_priorities"` // descriptive only
	EcoScoreRange       ScoreRange `json:"eco_score_range"`
}

var categoryProfiles = []CategoryProfile{
	{
		Name:                CategoryElectronics,
		PackagingPriorities: []string{"protection", "moisture_resistance", "anti_static"},
		EcoScoreRange:       ScoreRange{Low: 75, High: 95},
	},
	{
		Name:                CategoryFood,
		PackagingPriorities: []string{"freshness", "shelf_life", "food_safety"},
		EcoScoreRange:       ScoreRange{Low: 70, High: 90},
	},
	{
		Name:                CategoryCosmetics,
		PackagingPriorities: []string{"presentation", "contamination_prevention", "durability"},
		EcoScoreRange:       ScoreRange{Low: 65, High: 88},
	},
	{
		Name:                CategoryClothing,
		PackagingPriorities: []string{"moisture_resistance", "compressibility", "presentation"},
		EcoScoreRange:       ScoreRange{Low: 80, High: 95},
	},
	{
		Name:                CategoryToys,
		PackagingPriorities: []string{"safety", "presentation", "durability"},
		EcoScoreRange:       ScoreRange{Low: 70, High: 92},
	},
}

// Categories returns the category profiles in declaration order
func Categories() []CategoryProfile {
	out := make([]CategoryProfile, len(categoryProfiles))
	for i, p := range categoryProfiles {
		p.PackagingPriorities = append([]string(nil), p.PackagingPriorities...)
		out[i] = p
	}
	return out
}

// Profile returns the profile for c
func (c Category) Profile() (CategoryProfile, bool) {
	for _, p := range categoryProfiles {
		if p.Name == c {
			return p, true
		}
	}
	return CategoryProfile{}, false
}
