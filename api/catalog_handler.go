package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/eco-packaging/models"
	"github.com/raushankrgupta/eco-packaging/utils"
)

// ProductsResponse is the autocomplete list
type ProductsResponse struct {
	Products []string `json:"products"`
	Total    int      `json:"total"`
}

// ProductsHandler returns every known display name for autocomplete
func (h *Handler) ProductsHandler(w http.ResponseWriter, r *http.Request) {
	names := h.Catalog.Names()
	utils.RespondJSON(w, http.StatusOK, ProductsResponse{
		Products: names,
		Total:    len(names),
	})
}

// ProductLookupHandler returns the full generated record for ?name=
func (h *Handler) ProductLookupHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.PrintLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Product Lookup API]")

	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		utils.RespondError(w, &logMessageBuilder, "Please provide a 'name' query parameter", http.StatusBadRequest)
		return
	}

	product, ok := h.Catalog.Lookup(name)
	if !ok {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Product %q not found", name), http.StatusNotFound)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Found: "+product.Name)
	utils.RespondJSON(w, http.StatusOK, product)
}

// CategoriesHandler returns the static category definitions
func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": models.Categories(),
	})
}

// MaterialsHandler returns the static material table
func MaterialsHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"materials": models.Materials(),
	})
}
