package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/raushankrgupta/eco-packaging/models"
)

// Result is what a user sees after submitting one product on the page
type Result struct {
	Product        string            `json:"product"`
	Alert          string            `json:"alert,omitempty"`
	ResultsVisible bool              `json:"results_visible"`
	Recommended    string            `json:"recommended_material,omitempty"`
	EcoScore       string            `json:"eco_score,omitempty"`
	Properties     []models.Property `json:"properties,omitempty"`
	Screenshot     []byte            `json:"-"`
}

// Driver operates the analyzer page in a real browser
type Driver interface {
	// Analyze opens baseURL, submits product and reports the resulting page
	Analyze(ctx context.Context, baseURL, product string) (*Result, error)
}

// Options configure the browser drivers
type Options struct {
	ChromeDriverPath string
	Timeout          time.Duration
}

// GetDriver returns the driver registered under name
func GetDriver(name string, opts Options) (Driver, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = time.Minute
	}

	switch strings.ToLower(name) {
	case "", "chromedp":
		return NewChromeDPDriver(opts), nil
	case "selenium":
		return NewSeleniumDriver(opts), nil
	default:
		return nil, fmt.Errorf("no browser driver named %q", name)
	}
}

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Holds once the page's fetch has come back, with or without an alert
const settledScript = `document.querySelector('.loading-screen').classList.contains('hidden')`
