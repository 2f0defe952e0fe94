package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/eco-packaging/utils"
)

// IndexHandler renders the analyzer page with the caller's view state
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.PrintLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Index Page]")

	data := pageData{
		ChartJSURL: h.ChartJSURL,
		Names:      h.Catalog.Names(),
		State:      h.currentState(r),
	}

	// Render into a buffer so a template failure can still produce a clean 500
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Template error: %v", err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
