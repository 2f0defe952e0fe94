package models

import "fmt"

// MaterialScore is one material's sustainability score for a product
type MaterialScore struct {
	Material string `json:"material"`
	Score    int    `json:"score"`
}

// Costs is the cost breakdown of packaging a product
type Costs struct {
	Material       int `json:"material_cost"`
	Production     int `json:"production_cost"`
	Transportation int `json:"transportation_cost"`
	Recycling      int `json:"recycling_cost"`
}

// CostLabels are the chart labels for Costs, in Values order
var CostLabels = []string{"Material", "Production", "Transportation", "Recycling"}

// Values returns the costs in fixed field order
func (c Costs) Values() []int {
	return []int{c.Material, c.Production, c.Transportation, c.Recycling}
}

// Impact is the environmental impact breakdown of a product
type Impact struct {
	CarbonFootprint   int `json:"carbon_footprint"`
	WaterUsage        int `json:"water_usage"`
	EnergyConsumption int `json:"energy_consumption"`
	WasteGeneration   int `json:"waste_generation"`
}

// ImpactLabels are the chart labels for Impact, in Values order
var ImpactLabels = []string{"Carbon Footprint", "Water Usage", "Energy Consumption", "Waste Generation"}

// Values returns the impact figures in fixed field order
func (i Impact) Values() []int {
	return []int{i.CarbonFootprint, i.WaterUsage, i.EnergyConsumption, i.WasteGeneration}
}

// Property is a label/value row of the material properties panel
type Property struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Properties are the descriptive ratings shown for the recommended material
type Properties struct {
	Durability      string `json:"durability"`
	WaterResistance string `json:"water_resistance"`
	CostEfficiency  string `json:"cost_efficiency"`
	Recyclability   string `json:"recyclability"`
}

// Rows returns the properties as panel rows in fixed order
func (p Properties) Rows() []Property {
	return []Property{
		{Label: "Durability", Value: p.Durability},
		{Label: "Water Resistance", Value: p.WaterResistance},
		{Label: "Cost Efficiency", Value: p.CostEfficiency},
		{Label: "Recyclability", Value: p.Recyclability},
	}
}

// Rating formats n as "<n>/10"
func Rating(n int) string {
	return fmt.Sprintf("%d/10", n)
}

// Product is a generated product record. It is never modified after generation.
type Product struct {
	Name           string          `json:"name"`
	Category       Category        `json:"category"`
	Recommended    string          `json:"recommended"`
	EcoScore       int             `json:"eco_score"`
	Sustainability []MaterialScore `json:"sustainability"` // one entry per material, in MaterialNames order
	Costs          Costs           `json:"costs"`
	Impact         Impact          `json:"impact"`
	Properties     Properties      `json:"properties"`
}

// SustainabilityValues returns the per-material scores in material table order
func (p Product) SustainabilityValues() []int {
	values := make([]int, len(p.Sustainability))
	for i, s := range p.Sustainability {
		values[i] = s.Score
	}
	return values
}

// SustainabilityScore returns the score for the named material
func (p Product) SustainabilityScore(material string) (int, bool) {
	for _, s := range p.Sustainability {
		if s.Material == material {
			return s.Score, true
		}
	}
	return 0, false
}

// Clone returns a deep copy so callers cannot mutate a catalog record
func (p Product) Clone() Product {
	p.Sustainability = append([]MaterialScore(nil), p.Sustainability...)
	return p
}
