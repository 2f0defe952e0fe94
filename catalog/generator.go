package catalog

import (
	"math"
	"math/rand"
	"time"

	"github.com/raushankrgupta/eco-packaging/models"
)

// Sampling bounds, all [low, high)
var (
	SustainabilityRange = models.ScoreRange{Low: 65, High: 95}
	CostRange           = models.ScoreRange{Low: 60, High: 90}
	ImpactRange         = models.ScoreRange{Low: 10, High: 40}
	CostEfficiencyRange = models.ScoreRange{Low: 7, High: 10}
)

// Material cost is the base cost scaled by a factor drawn from [0.8, 1.2)
const (
	materialCostFactorLow  = 0.8
	materialCostFactorSpan = 0.4
)

// Generator draws product records. Every field is an independent uniform draw.
type Generator struct {
	random *rand.Rand
}

// NewGenerator returns a generator seeded from the clock
func NewGenerator() *Generator {
	return NewGeneratorWithRand(rand.New(rand.NewSource(time.Now().UTC().UnixNano())))
}

// NewGeneratorWithRand returns a generator drawing from r
func NewGeneratorWithRand(r *rand.Rand) *Generator {
	return &Generator{random: r}
}

// Generate builds a catalog from SeedNames
func (g *Generator) Generate() *Catalog {
	c := &Catalog{
		products: make(map[string]models.Product, len(SeedNames)),
		names:    make([]string, 0, len(SeedNames)),
	}
	for _, name := range SeedNames {
		c.add(g.Product(name))
	}
	return c
}

// Product generates the record for a single display name
func (g *Generator) Product(name string) models.Product {
	category := Classify(name)
	profile, _ := category.Profile()

	rec, _ := RecommendationFor(category)
	recommended := rec.Pick(g.random.Float64())
	material, _ := models.LookupMaterial(recommended)

	product := models.Product{
		Name:        name,
		Category:    category,
		Recommended: recommended,
		EcoScore:    g.intIn(profile.EcoScoreRange),
	}

	for _, m := range models.MaterialNames() {
		product.Sustainability = append(product.Sustainability, models.MaterialScore{
			Material: m,
			Score:    g.intIn(SustainabilityRange),
		})
	}

	product.Costs = models.Costs{
		Material:       int(math.Floor(float64(material.BaseCost) * (g.random.Float64()*materialCostFactorSpan + materialCostFactorLow))),
		Production:     g.intIn(CostRange),
		Transportation: g.intIn(CostRange),
		Recycling:      g.intIn(CostRange),
	}

	product.Impact = models.Impact{
		CarbonFootprint:   g.intIn(ImpactRange),
		WaterUsage:        g.intIn(ImpactRange),
		EnergyConsumption: g.intIn(ImpactRange),
		WasteGeneration:   g.intIn(ImpactRange),
	}

	product.Properties = models.Properties{
		Durability:      models.Rating(material.Durability),
		WaterResistance: models.Rating(material.WaterResistance),
		CostEfficiency:  models.Rating(g.intIn(CostEfficiencyRange)),
		Recyclability:   models.Rating(material.Recyclability),
	}

	return product
}

func (g *Generator) intIn(r models.ScoreRange) int {
	return r.Low + g.random.Intn(r.High-r.Low)
}
