package api

import (
	"html/template"

	"github.com/raushankrgupta/eco-packaging/view"
)

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	ChartJSURL string
	Names      []string
	State      view.State
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Eco Packaging Analyzer</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 0 auto; max-width: 1100px; padding: 1rem; color: #2c3e50; }
.search { display: flex; gap: .5rem; margin-bottom: 1.5rem; }
.search input { flex: 1; padding: .6rem; font-size: 1rem; }
.search button { padding: .6rem 1.2rem; background: #2ecc71; color: #fff; border: 0; border-radius: 4px; cursor: pointer; }
.hidden { display: none !important; }
.loading-screen { padding: 2rem; text-align: center; color: #7f8c8d; }
.summary { display: flex; gap: 2rem; margin-bottom: 1rem; }
.score-value { font-size: 2rem; font-weight: 700; color: #27ae60; }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { border: 1px solid #dee2e6; border-radius: 8px; padding: 1rem; }
.property-item { display: flex; justify-content: space-between; padding: .25rem 0; border-bottom: 1px solid #eee; }
</style>
</head>
<body>
<h1>Eco Packaging Analyzer</h1>

<div class="search">
  <input type="text" id="productInput" list="products" placeholder="Enter a product, e.g. Smartphone" autocomplete="off">
  <button id="analyzeBtn" type="button">Analyze</button>
</div>
<datalist id="products">
{{- range .Names}}
  <option value="{{.}}"></option>
{{- end}}
</datalist>

<div class="loading-screen{{if not .State.Loading}} hidden{{end}}">Analyzing packaging options...</div>

<div class="results{{if not .State.ResultsVisible}} hidden{{end}}">
  <div class="summary">
    <div>Recommended material: <strong id="recommendedMaterial">{{.State.Recommended}}</strong></div>
    <div>Eco score: <span class="score-value">{{if .State.ResultsVisible}}{{.State.EcoScore}}{{end}}</span></div>
  </div>
  <div class="charts">
    <div class="chart-box"><h3>Sustainability by Material</h3><canvas id="sustainabilityChart"></canvas></div>
    <div class="chart-box"><h3>Cost Breakdown</h3><canvas id="costChart"></canvas></div>
    <div class="chart-box"><h3>Environmental Impact</h3><canvas id="impactChart"></canvas></div>
    <div class="chart-box" id="materialProperties">
      <h3>Material Properties</h3>
      {{- range .State.Properties}}
      <div class="property-item"><span>{{.Label}}</span><span>{{.Value}}</span></div>
      {{- end}}
    </div>
  </div>
</div>

<script type="application/json" id="viewState">{{.State}}</script>
<script src="{{.ChartJSURL}}"></script>
<script>
document.addEventListener('DOMContentLoaded', function() {
  const analyzeBtn = document.getElementById('analyzeBtn');
  const productInput = document.getElementById('productInput');
  const loadingScreen = document.querySelector('.loading-screen');
  const results = document.querySelector('.results');
  const charts = {};

  function apply(state) {
    results.classList.toggle('hidden', !state.results_visible);
    state.charts.forEach(function(snap) {
      if (!charts[snap.id]) {
        charts[snap.id] = new Chart(document.getElementById(snap.id), snap.config);
        return;
      }
      charts[snap.id].data.datasets[0].data = snap.config.data.datasets[0].data;
      charts[snap.id].update();
    });
    if (!state.results_visible) {
      return;
    }
    const panel = document.getElementById('materialProperties');
    panel.innerHTML = '<h3>Material Properties</h3>';
    state.properties.forEach(function(p) {
      const row = document.createElement('div');
      row.className = 'property-item';
      const label = document.createElement('span');
      label.textContent = p.label;
      const value = document.createElement('span');
      value.textContent = p.value;
      row.appendChild(label);
      row.appendChild(value);
      panel.appendChild(row);
    });
    document.getElementById('recommendedMaterial').textContent = state.recommended_material;
    document.querySelector('.score-value').textContent = state.eco_score;
  }

  analyzeBtn.addEventListener('click', function() {
    const product = productInput.value.trim();
    if (!product) {
      alert('Please enter a product name');
      return;
    }
    loadingScreen.classList.remove('hidden');
    fetch('/api/analyze', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({product: product})
    }).then(function(resp) {
      return resp.json();
    }).then(function(body) {
      loadingScreen.classList.add('hidden');
      if (body.error) {
        alert(body.error);
        return;
      }
      apply(body);
    }).catch(function() {
      loadingScreen.classList.add('hidden');
    });
  });

  apply(JSON.parse(document.getElementById('viewState').textContent));
});
</script>
</body>
</html>
`
