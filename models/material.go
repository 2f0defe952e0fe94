package models

// Material is a packaging material with static, process-lifetime attributes
type Material struct {
	Name            string `json:"name"`
	BaseCost        int    `json:"base_cost"`
	Sustainability  int    `json:"sustainability"`
	WaterResistance int    `json:"water_resistance"` // out of 10
	Durability      int    `json:"durability"`       // out of 10
	Recyclability   int    `json:"recyclability"`    // out of 10
}

const (
	RecycledPET          = "Recycled PET"
	Cardboard            = "Cardboard"
	BiodegradablePlastic = "Biodegradable Plastic"
	Glass                = "Glass"
	Aluminum             = "Aluminum"
	HempBased            = "Hemp-based"
	MushroomPackaging    = "Mushroom Packaging"
)

// Order matters: it is the axis order of the sustainability chart.
var materials = []Material{
	{Name: RecycledPET, BaseCost: 75, Sustainability: 92, WaterResistance: 9, Durability: 8, Recyclability: 9},
	{Name: Cardboard, BaseCost: 60, Sustainability: 95, WaterResistance: 4, Durability: 6, Recyclability: 10},
	{Name: BiodegradablePlastic, BaseCost: 82, Sustainability: 88, WaterResistance: 7, Durability: 7, Recyclability: 10},
	{Name: Glass, BaseCost: 90, Sustainability: 85, WaterResistance: 10, Durability: 9, Recyclability: 8},
	{Name: Aluminum, BaseCost: 85, Sustainability: 82, WaterResistance: 10, Durability: 9, Recyclability: 9},
	{Name: HempBased, BaseCost: 88, Sustainability: 96, WaterResistance: 6, Durability: 7, Recyclability: 10},
	{Name: MushroomPackaging, BaseCost: 92, Sustainability: 98, WaterResistance: 5, Durability: 6, Recyclability: 10},
}

// Materials returns a copy of the material table
func Materials() []Material {
	return append([]Material(nil), materials...)
}

// MaterialNames returns the material names in table order
func MaterialNames() []string {
	names := make([]string, len(materials))
	for i, m := range materials {
		names[i] = m.Name
	}
	return names
}

// LookupMaterial finds a material by exact name
func LookupMaterial(name string) (Material, bool) {
	for _, m := range materials {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}
