package charts

import "github.com/raushankrgupta/eco-packaging/models"

// Canvas ids used by the page
const (
	SustainabilityChartID = "sustainabilityChart"
	CostChartID           = "costChart"
	ImpactChartID         = "impactChart"
)

const (
	green      = "rgba(46, 204, 113, 1)"
	greenLight = "rgba(46, 204, 113, 0.2)"
	greenFill  = "rgba(46, 204, 113, 0.6)"
)

// NewSustainabilityChart is a radar chart with one axis per material, 0-100
func NewSustainabilityChart() *Chart {
	return New(SustainabilityChartID, KindRadar, models.MaterialNames(),
		Dataset{
			Label:                "Sustainability Score",
			BackgroundColor:      greenLight,
			BorderColor:          green,
			PointBackgroundColor: green,
		},
		Options{
			Responsive: true,
			Scales:     map[string]Scale{"r": {BeginAtZero: true, Max: 100}},
		},
	)
}

// NewCostChart is a bar chart over the four cost fields, 0-100
func NewCostChart() *Chart {
	return New(CostChartID, KindBar, models.CostLabels,
		Dataset{
			Label:           "Cost Efficiency",
			BackgroundColor: greenFill,
		},
		Options{
			Responsive: true,
			Scales:     map[string]Scale{"y": {BeginAtZero: true, Max: 100}},
		},
	)
}

// NewImpactChart is a doughnut chart over the four impact fields
func NewImpactChart() *Chart {
	return New(ImpactChartID, KindDoughnut, models.ImpactLabels,
		Dataset{
			BackgroundColor: []string{
				"rgba(46, 204, 113, 0.6)",
				"rgba(52, 152, 219, 0.6)",
				"rgba(155, 89, 182, 0.6)",
				"rgba(241, 196, 15, 0.6)",
			},
		},
		Options{Responsive: true},
	)
}
