package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/eco-packaging/utils"
	"github.com/raushankrgupta/eco-packaging/view"
)

// AnalyzeRequest is the submit payload
type AnalyzeRequest struct {
	Product string `json:"product"`
}

// AnalyzeResponse is the session's view state after a submission. Error is set
// when the user has to be alerted.
type AnalyzeResponse struct {
	view.State
	Error string `json:"error,omitempty"`
	Alert bool   `json:"alert,omitempty"`
}

// AnalyzeHandler submits a product query on behalf of the caller's session
func (h *Handler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.PrintLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Analyze API]")

	controller := h.session(w, r, &logMessageBuilder)

	// Support both Query Params and JSON Body
	query := r.URL.Query().Get("product")
	if query == "" {
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			query = req.Product
		}
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Query: %q", query))

	state, err := controller.Submit(r.Context(), query)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, view.ErrMissingInput):
			status = http.StatusBadRequest
		case errors.Is(err, view.ErrProductNotFound):
			status = http.StatusNotFound
		case r.Context().Err() != nil:
			status = http.StatusRequestTimeout
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Submit failed: %v", err))
		utils.RespondJSON(w, status, AnalyzeResponse{State: state, Error: view.AlertMessage(err), Alert: true})
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Showing %s (recommended %s, eco score %d)", state.Product, state.Recommended, state.EcoScore))
	utils.RespondJSON(w, http.StatusOK, AnalyzeResponse{State: state})
}

// ViewHandler returns the caller's current view state
func (h *Handler) ViewHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.PrintLogMessage(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[View API]")

	utils.RespondJSON(w, http.StatusOK, h.currentState(r))
}
