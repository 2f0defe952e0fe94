package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/eco-packaging/catalog"
	"github.com/raushankrgupta/eco-packaging/models"
	"github.com/raushankrgupta/eco-packaging/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client, *catalog.Catalog) {
	t.Helper()

	c := catalog.Build()
	h := NewHandler(c, view.NewSessions(c, 0, time.Hour), "/static/chart.js")
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}, c
}

func analyze(t *testing.T, client *http.Client, baseURL, product string) (int, AnalyzeResponse) {
	t.Helper()

	body, err := json.Marshal(AnalyzeRequest{Product: product})
	require.NoError(t, err)
	resp, err := client.Post(baseURL+"/api/analyze", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func fetchPage(t *testing.T, client *http.Client, baseURL string) *goquery.Document {
	t.Helper()

	resp, err := client.Get(baseURL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func TestIndexPage(t *testing.T) {
	srv, client, c := newTestServer(t)

	doc := fetchPage(t, client, srv.URL)

	var options []string
	doc.Find("datalist#products option").Each(func(i int, s *goquery.Selection) {
		options = append(options, s.AttrOr("value", ""))
	})
	assert.Equal(t, c.Names(), options)
	assert.Equal(t, "products", doc.Find("#productInput").AttrOr("list", ""))

	assert.True(t, doc.Find(".results").HasClass("hidden"))
	assert.True(t, doc.Find(".loading-screen").HasClass("hidden"))
	for _, id := range []string{"sustainabilityChart", "costChart", "impactChart"} {
		assert.Equal(t, 1, doc.Find("canvas#"+id).Length(), id)
	}

	var state view.State
	require.NoError(t, json.Unmarshal([]byte(doc.Find("#viewState").Text()), &state))
	assert.False(t, state.ResultsVisible)
	assert.Len(t, state.Charts, 3)
}

func TestAnalyzeMissingInput(t *testing.T) {
	srv, client, _ := newTestServer(t)

	status, resp := analyze(t, client, srv.URL, "   ")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please enter a product name", resp.Error)
	assert.True(t, resp.Alert)
	assert.False(t, resp.ResultsVisible)
}

func TestAnalyzeNotFound(t *testing.T) {
	srv, client, _ := newTestServer(t)

	status, resp := analyze(t, client, srv.URL, "Hoverboard 3000")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Product not found in database. Please try another product.", resp.Error)
	assert.False(t, resp.ResultsVisible)

	assert.True(t, fetchPage(t, client, srv.URL).Find(".results").HasClass("hidden"))
}

func TestAnalyzeShowsResults(t *testing.T) {
	srv, client, c := newTestServer(t)
	product, ok := c.Lookup("Smartphone")
	require.True(t, ok)

	status, resp := analyze(t, client, srv.URL, "Smartphone")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, resp.Error)
	assert.False(t, resp.Alert)
	assert.True(t, resp.ResultsVisible)
	assert.Equal(t, product.Recommended, resp.Recommended)
	assert.Equal(t, product.EcoScore, resp.EcoScore)

	require.Len(t, resp.Charts, 3)
	assert.Equal(t, product.SustainabilityValues(), resp.Charts[0].Config.Data.Datasets[0].Data)
	assert.Equal(t, product.Costs.Values(), resp.Charts[1].Config.Data.Datasets[0].Data)
	assert.Equal(t, product.Impact.Values(), resp.Charts[2].Config.Data.Datasets[0].Data)

	doc := fetchPage(t, client, srv.URL)
	assert.False(t, doc.Find(".results").HasClass("hidden"))
	assert.Equal(t, product.Recommended, doc.Find("#recommendedMaterial").Text())
	assert.Equal(t, strconv.Itoa(product.EcoScore), doc.Find(".score-value").Text())
	assert.Equal(t, 4, doc.Find("#materialProperties .property-item").Length())

	// a not-found query afterwards leaves the results on screen
	status, resp = analyze(t, client, srv.URL, "unknown thing")
	assert.Equal(t, http.StatusNotFound, status)
	assert.True(t, resp.ResultsVisible)
	assert.Equal(t, "Smartphone", resp.Product)
}

func TestAnalyzeReusesSessionCharts(t *testing.T) {
	srv, client, c := newTestServer(t)

	_, first := analyze(t, client, srv.URL, "laptop")
	status, second := analyze(t, client, srv.URL, "JEANS")
	require.Equal(t, http.StatusOK, status)

	jeans, _ := c.Lookup("Jeans")
	for i := range second.Charts {
		assert.Equal(t, first.Charts[i].ID, second.Charts[i].ID)
		assert.Equal(t, 1, first.Charts[i].Revision)
		assert.Equal(t, 2, second.Charts[i].Revision)
	}
	assert.Equal(t, jeans.Costs.Values(), second.Charts[1].Config.Data.Datasets[0].Data)

	// a different browser gets its own untouched charts
	other := &http.Client{}
	resp, err := other.Get(srv.URL + "/api/view")
	require.NoError(t, err)
	defer resp.Body.Close()
	var state view.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.False(t, state.ResultsVisible)
	assert.Zero(t, state.Charts[0].Revision)
}

func TestReadOnlyRequestsDoNotCreateSessions(t *testing.T) {
	c := catalog.Build()
	sessions := view.NewSessions(c, 0, time.Hour)
	srv := httptest.NewServer(NewHandler(c, sessions, "/static/chart.js").Routes())
	defer srv.Close()

	client := &http.Client{}
	for i := 0; i < 200; i++ {
		for _, path := range []string{"/api/view", "/"} {
			resp, err := client.Get(srv.URL + path)
			require.NoError(t, err)
			resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Empty(t, resp.Cookies())
		}
	}
	assert.Zero(t, sessions.Len())

	resp, err := client.Post(srv.URL+"/api/analyze?product=Honey", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 1, sessions.Len())
	require.Len(t, resp.Cookies(), 1)
	assert.Equal(t, SessionCookieName, resp.Cookies()[0].Name)
}

func TestViewWithUnknownCookieShowsInitialState(t *testing.T) {
	c := catalog.Build()
	sessions := view.NewSessions(c, 0, time.Hour)
	srv := httptest.NewServer(NewHandler(c, sessions, "/static/chart.js").Routes())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/view", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var state view.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.False(t, state.ResultsVisible)
	assert.Len(t, state.Charts, 3)
	assert.Zero(t, sessions.Len())
}

func TestPageChecksBlankInputBeforeLoading(t *testing.T) {
	srv, client, _ := newTestServer(t)

	script := fetchPage(t, client, srv.URL).Find("script:not([src]):not([type])").Text()
	guard := strings.Index(script, "if (!product)")
	loading := strings.Index(script, "loadingScreen.classList.remove('hidden')")
	require.NotEqual(t, -1, guard)
	require.NotEqual(t, -1, loading)
	assert.Less(t, guard, loading)
	assert.Contains(t, script, "productInput.value.trim()")
}

func TestAnalyzeQueryParam(t *testing.T) {
	srv, client, _ := newTestServer(t)

	resp, err := client.Post(srv.URL+"/api/analyze?product=Honey", "application/json", strings.NewReader(""))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProductsHandler(t *testing.T) {
	srv, client, c := newTestServer(t)

	resp, err := client.Get(srv.URL + "/api/products")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out ProductsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, c.Names(), out.Products)
	assert.Equal(t, c.Len(), out.Total)
}

func TestProductLookupHandler(t *testing.T) {
	srv, client, c := newTestServer(t)

	tests := []struct {
		query  string
		status int
	}{
		{"?name=olive%20oil", http.StatusOK},
		{"?name=", http.StatusBadRequest},
		{"", http.StatusBadRequest},
		{"?name=warp%20drive", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, err := client.Get(srv.URL + "/api/products/lookup" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.status == http.StatusOK {
				var p models.Product
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
				expected, _ := c.Lookup("Olive Oil")
				assert.Equal(t, expected, p)
			}
		})
	}
}

func TestStaticTables(t *testing.T) {
	srv, client, _ := newTestServer(t)

	resp, err := client.Get(srv.URL + "/api/materials")
	require.NoError(t, err)
	var materials struct {
		Materials []models.Material `json:"materials"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&materials))
	resp.Body.Close()
	assert.Len(t, materials.Materials, 7)

	resp, err = client.Get(srv.URL + "/api/categories")
	require.NoError(t, err)
	var categories struct {
		Categories []models.CategoryProfile `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	resp.Body.Close()
	assert.Len(t, categories.Categories, 5)
}

func TestRoutingAndHealth(t *testing.T) {
	srv, client, _ := newTestServer(t)

	resp, err := client.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/api/analyze")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
