package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeDPDriver drives a headless Chrome over the DevTools protocol
type ChromeDPDriver struct {
	opts Options
}

// NewChromeDPDriver creates a ChromeDP driver
func NewChromeDPDriver(opts Options) *ChromeDPDriver {
	return &ChromeDPDriver{opts: opts}
}

// Analyze submits product on the page and captures the outcome plus a screenshot
func (d *ChromeDPDriver) Analyze(ctx context.Context, baseURL, product string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	// The page reports failures with alert(); accept it and keep its text
	var (
		mu    sync.Mutex
		alert string
	)
	chromedp.ListenTarget(taskCtx, func(ev interface{}) {
		if e, ok := ev.(*page.EventJavascriptDialogOpening); ok {
			mu.Lock()
			alert = e.Message
			mu.Unlock()
			go func() {
				if err := chromedp.Run(taskCtx, page.HandleJavaScriptDialog(true)); err != nil {
					fmt.Printf("[ChromeDP] Failed to dismiss dialog: %v\n", err)
				}
			}()
		}
	})

	headers := map[string]interface{}{
		"Accept-Language": "en-US,en;q=0.9",
	}
	if err := chromedp.Run(taskCtx, network.SetExtraHTTPHeaders(network.Headers(headers))); err != nil {
		return nil, fmt.Errorf("chromedp header error: %w", err)
	}

	var (
		htmlContent string
		screenshot  []byte
		settled     bool
	)
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(strings.TrimRight(baseURL, "/")+"/"),
		chromedp.WaitVisible("#productInput", chromedp.ByQuery),
		chromedp.SendKeys("#productInput", product, chromedp.ByQuery),
		chromedp.Click("#analyzeBtn", chromedp.ByQuery),
		chromedp.Poll(settledScript, &settled),
		chromedp.OuterHTML("html", &htmlContent),
		chromedp.FullScreenshot(&screenshot, 90),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp navigation error: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}
	if !IsAnalyzerPage(doc) {
		return nil, fmt.Errorf("%s did not serve the analyzer page", baseURL)
	}

	result := ParseResult(doc)
	result.Product = product
	result.Screenshot = screenshot
	mu.Lock()
	result.Alert = alert
	mu.Unlock()
	return result, nil
}
