package browser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/eco-packaging/models"
)

// IsAnalyzerPage checks that doc is the analyzer page and not an error page
func IsAnalyzerPage(doc *goquery.Document) bool {
	return doc.Find("#productInput").Length() > 0 &&
		doc.Find("#analyzeBtn").Length() > 0 &&
		doc.Find(".results").Length() > 0
}

// ParseResult reads the result region of a rendered analyzer page
func ParseResult(doc *goquery.Document) *Result {
	result := &Result{}

	results := doc.Find(".results").First()
	result.ResultsVisible = results.Length() > 0 && !results.HasClass("hidden")
	if !result.ResultsVisible {
		return result
	}

	result.Recommended = strings.TrimSpace(doc.Find("#recommendedMaterial").Text())
	result.EcoScore = strings.TrimSpace(doc.Find(".score-value").First().Text())

	doc.Find("#materialProperties .property-item").Each(func(i int, s *goquery.Selection) {
		spans := s.Find("span")
		if spans.Length() < 2 {
			return
		}
		result.Properties = append(result.Properties, models.Property{
			Label: strings.TrimSpace(spans.Eq(0).Text()),
			Value: strings.TrimSpace(spans.Eq(1).Text()),
		})
	})

	return result
}
