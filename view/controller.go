// Package view holds the per-page-session state behind the analyzer page: the
// result region, the loading indicator, the properties panel and the three charts.
package view

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/raushankrgupta/eco-packaging/catalog"
	"github.com/raushankrgupta/eco-packaging/charts"
	"github.com/raushankrgupta/eco-packaging/models"
)

// Charts groups the three chart widgets of the result region
type Charts struct {
	Sustainability *charts.Chart
	Cost           *charts.Chart
	Impact         *charts.Chart
}

func newCharts() *Charts {
	return &Charts{
		Sustainability: charts.NewSustainabilityChart(),
		Cost:           charts.NewCostChart(),
		Impact:         charts.NewImpactChart(),
	}
}

// State is a copy of everything the page displays
type State struct {
	ResultsVisible bool              `json:"results_visible"`
	Loading        bool              `json:"loading"`
	Product        string            `json:"product,omitempty"`
	Category       models.Category   `json:"category,omitempty"`
	Recommended    string            `json:"recommended_material,omitempty"`
	EcoScore       int               `json:"eco_score"`
	Properties     []models.Property `json:"properties"`
	Charts         []charts.Snapshot `json:"charts"`
}

// Controller bridges submitted queries to the page state of one session
type Controller struct {
	catalog *catalog.Catalog
	delay   time.Duration

	mu             sync.Mutex
	charts         *Charts
	resultsVisible bool
	pending        int
	shown          *models.Product
}

// NewController creates a controller over a read-only catalog. delay is the
// cosmetic pause before results are shown; zero disables it.
func NewController(c *catalog.Catalog, delay time.Duration) *Controller {
	return &Controller{
		catalog: c,
		delay:   delay,
		charts:  newCharts(),
	}
}

// InitialState is the page state of a session that has not submitted anything
func InitialState() State {
	return (&Controller{charts: newCharts()}).Snapshot()
}

// Charts returns the controller's chart instances
func (c *Controller) Charts() *Charts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.charts
}

// Submit runs one analyze request. A blank query fails with ErrMissingInput
// before anything changes; an unknown product fails with ErrProductNotFound and
// leaves the result region as it was. A chart that rejects its series fails the
// submission before any chart is redrawn. Concurrent submissions do not wait for
// each other and the last one to finish wins.
func (c *Controller) Submit(ctx context.Context, query string) (State, error) {
	if strings.TrimSpace(query) == "" {
		return c.Snapshot(), ErrMissingInput
	}

	c.setLoading(true)
	if err := c.wait(ctx); err != nil {
		c.setLoading(false)
		return c.Snapshot(), err
	}
	c.setLoading(false)

	product, ok := c.catalog.Lookup(query)
	if !ok {
		return c.Snapshot(), ErrProductNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	updates := []struct {
		chart  *charts.Chart
		values []int
	}{
		{c.charts.Sustainability, product.SustainabilityValues()},
		{c.charts.Cost, product.Costs.Values()},
		{c.charts.Impact, product.Impact.Values()},
	}
	for _, u := range updates {
		if err := u.chart.SetSeries(u.values); err != nil {
			return c.snapshotLocked(), err
		}
	}
	for _, u := range updates {
		u.chart.Update()
	}
	c.resultsVisible = true
	c.shown = &product

	return c.snapshotLocked(), nil
}

func (c *Controller) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) setLoading(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on {
		c.pending++
	} else if c.pending > 0 {
		c.pending--
	}
}

// Snapshot returns the current page state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	ch := c.charts
	state := State{
		ResultsVisible: c.resultsVisible,
		Loading:        c.pending > 0,
		Properties:     []models.Property{},
		Charts: []charts.Snapshot{
			ch.Sustainability.Snapshot(),
			ch.Cost.Snapshot(),
			ch.Impact.Snapshot(),
		},
	}
	if c.shown != nil {
		state.Product = c.shown.Name
		state.Category = c.shown.Category
		state.Recommended = c.shown.Recommended
		state.EcoScore = c.shown.EcoScore
		state.Properties = c.shown.Properties.Rows()
	}
	return state
}
