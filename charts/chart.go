// Package charts models the three chart widgets of the result region as
// Chart.js-compatible configurations that are built once and updated in place.
package charts

import (
	"fmt"
	"sync"
)

// Kind is the Chart.js chart type
type Kind string

const (
	KindRadar    Kind = "radar"
	KindBar      Kind = "bar"
	KindDoughnut Kind = "doughnut"
)

// Dataset is a single data series with its colors
type Dataset struct {
	Label                string `json:"label,omitempty"`
	Data                 []int  `json:"data"`
	BackgroundColor      any    `json:"backgroundColor,omitempty"` // string or []string
	BorderColor          string `json:"borderColor,omitempty"`
	PointBackgroundColor string `json:"pointBackgroundColor,omitempty"`
}

// Data is the labels plus datasets of a chart
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Scale bounds one axis
type Scale struct {
	BeginAtZero bool `json:"beginAtZero"`
	Max         int  `json:"max,omitempty"`
}

// Options are the display options passed to Chart.js
type Options struct {
	Responsive bool             `json:"responsive"`
	Scales     map[string]Scale `json:"scales,omitempty"`
}

// Config is the declarative configuration handed to the browser
type Config struct {
	Type    Kind    `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Chart is one chart widget. Only its series changes after construction.
type Chart struct {
	ID string

	mu       sync.RWMutex
	config   Config
	revision int
}

// New creates a chart with a zeroed single series sized to labels
func New(id string, kind Kind, labels []string, dataset Dataset, options Options) *Chart {
	dataset.Data = make([]int, len(labels))
	return &Chart{
		ID: id,
		config: Config{
			Type: kind,
			Data: Data{
				Labels:   append([]string(nil), labels...),
				Datasets: []Dataset{dataset},
			},
			Options: options,
		},
	}
}

// SetSeries replaces the chart's data series. The series length must match the labels.
func (c *Chart) SetSeries(values []int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(values) != len(c.config.Data.Labels) {
		return fmt.Errorf("chart %s: series has %d values, want %d", c.ID, len(values), len(c.config.Data.Labels))
	}
	c.config.Data.Datasets[0].Data = append([]int(nil), values...)
	return nil
}

// Update marks the chart for redraw
func (c *Chart) Update() {
	c.mu.Lock()
	c.revision++
	c.mu.Unlock()
}

// Series returns a copy of the current data series
func (c *Chart) Series() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]int(nil), c.config.Data.Datasets[0].Data...)
}

// Revision counts redraws since construction
func (c *Chart) Revision() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revision
}

// Snapshot is a point-in-time copy of a chart for rendering
type Snapshot struct {
	ID       string `json:"id"`
	Revision int    `json:"revision"`
	Config   Config `json:"config"`
}

// Snapshot copies the chart's configuration
func (c *Chart) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cfg := c.config
	cfg.Data.Labels = append([]string(nil), cfg.Data.Labels...)
	cfg.Data.Datasets = make([]Dataset, len(c.config.Data.Datasets))
	for i, ds := range c.config.Data.Datasets {
		ds.Data = append([]int(nil), ds.Data...)
		cfg.Data.Datasets[i] = ds
	}
	return Snapshot{ID: c.ID, Revision: c.revision, Config: cfg}
}
