package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// SeleniumDriver drives Chrome through a local ChromeDriver service
type SeleniumDriver struct {
	opts  Options
	ports *PortManager
}

// NewSeleniumDriver creates a Selenium driver using the default port manager
func NewSeleniumDriver(opts Options) *SeleniumDriver {
	return &SeleniumDriver{opts: opts, ports: DefaultPortManager()}
}

// Analyze submits product on the page and captures the outcome plus a screenshot
func (d *SeleniumDriver) Analyze(ctx context.Context, baseURL, product string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := d.opts.Timeout
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		timeout = time.Until(deadline)
	}

	port, err := d.ports.GetPort()
	if err != nil {
		return nil, fmt.Errorf("port error: %w", err)
	}
	defer d.ports.ReleasePort(port)

	service, err := selenium.NewChromeDriverService(d.opts.ChromeDriverPath, port)
	if err != nil {
		return nil, fmt.Errorf("error starting Chrome driver service: %v", err)
	}
	defer service.Stop()

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{
		Args: []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			"--window-size=1280,1024",
			fmt.Sprintf("--user-agent=%s", userAgent),
		},
	})

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		return nil, fmt.Errorf("error creating WebDriver: %v", err)
	}
	defer wd.Quit()

	wd.SetPageLoadTimeout(timeout)

	if err := wd.Get(strings.TrimRight(baseURL, "/") + "/"); err != nil {
		return nil, fmt.Errorf("navigation error: %w", err)
	}

	input, err := wd.FindElement(selenium.ByID, "productInput")
	if err != nil {
		return nil, fmt.Errorf("product input not found: %w", err)
	}
	if err := input.SendKeys(product); err != nil {
		return nil, fmt.Errorf("typing product: %w", err)
	}
	button, err := wd.FindElement(selenium.ByID, "analyzeBtn")
	if err != nil {
		return nil, fmt.Errorf("analyze button not found: %w", err)
	}
	if err := button.Click(); err != nil {
		return nil, fmt.Errorf("clicking analyze: %w", err)
	}

	var alert string
	err = wd.WaitWithTimeout(func(wd selenium.WebDriver) (bool, error) {
		// An open alert blocks scripts, so check for it first
		if text, err := wd.AlertText(); err == nil {
			alert = text
			return true, wd.AcceptAlert()
		}
		settled, err := wd.ExecuteScript("return "+settledScript+";", nil)
		if err != nil {
			return false, nil
		}
		done, _ := settled.(bool)
		return done, nil
	}, timeout)
	if err != nil {
		return nil, fmt.Errorf("waiting for result: %w", err)
	}

	html, err := wd.PageSource()
	if err != nil {
		return nil, fmt.Errorf("page source error: %w", err)
	}
	screenshot, err := wd.Screenshot()
	if err != nil {
		fmt.Printf("[Selenium] Screenshot failed: %v\n", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	if !IsAnalyzerPage(doc) {
		return nil, fmt.Errorf("%s did not serve the analyzer page", baseURL)
	}

	result := ParseResult(doc)
	result.Product = product
	result.Alert = alert
	result.Screenshot = screenshot
	return result, nil
}
