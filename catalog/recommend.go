package catalog

import "github.com/raushankrgupta/eco-packaging/models"

// Recommendation picks Above when a uniform draw in [0,1) exceeds Threshold,
// otherwise Below.
type Recommendation struct {
	Threshold float64
	Above     string
	Below     string
}

var recommendations = map[models.Category]Recommendation{
	models.CategoryElectronics: {Threshold: 0.7, Above: models.RecycledPET, Below: models.Cardboard},
	models.CategoryFood:        {Threshold: 0.6, Above: models.BiodegradablePlastic, Below: models.Glass},
	models.CategoryCosmetics:   {Threshold: 0.5, Above: models.Glass, Below: models.Aluminum},
	models.CategoryClothing:    {Threshold: 0.8, Above: models.HempBased, Below: models.RecycledPET},
	models.CategoryToys:        {Threshold: 0.7, Above: models.Cardboard, Below: models.RecycledPET},
}

// RecommendationFor returns the material split used for category c
func RecommendationFor(c models.Category) (Recommendation, bool) {
	r, ok := recommendations[c]
	return r, ok
}

// Pick resolves the recommendation for a single draw u
func (r Recommendation) Pick(u float64) string {
	if u > r.Threshold {
		return r.Above
	}
	return r.Below
}

// Candidates returns the two materials this recommendation can produce
func (r Recommendation) Candidates() []string {
	return []string{r.Above, r.Below}
}
