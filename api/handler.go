package api

import (
	"net/http"
	"strings"

	"github.com/raushankrgupta/eco-packaging/catalog"
	"github.com/raushankrgupta/eco-packaging/utils"
	"github.com/raushankrgupta/eco-packaging/view"
)

// SessionCookieName identifies a page session's view state
const SessionCookieName = "ecopack_session"

// Handler serves the analyzer page and its JSON API
type Handler struct {
	Catalog    *catalog.Catalog
	Sessions   *view.Sessions
	ChartJSURL string
}

// NewHandler creates a handler over a read-only catalog and its sessions
func NewHandler(c *catalog.Catalog, sessions *view.Sessions, chartJSURL string) *Handler {
	return &Handler{
		Catalog:    c,
		Sessions:   sessions,
		ChartJSURL: chartJSURL,
	}
}

// Routes registers every endpoint and wraps them in the CORS and latency middleware
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.IndexHandler)
	mux.HandleFunc("GET /health", HealthHandler)

	mux.HandleFunc("GET /api/products", h.ProductsHandler)
	mux.HandleFunc("GET /api/products/lookup", h.ProductLookupHandler)
	mux.HandleFunc("GET /api/categories", CategoriesHandler)
	mux.HandleFunc("GET /api/materials", MaterialsHandler)

	mux.HandleFunc("POST /api/analyze", h.AnalyzeHandler)
	mux.HandleFunc("GET /api/view", h.ViewHandler)

	return utils.LatencyMiddleware(utils.CORSMiddleware(mux))
}

func sessionID(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// session resolves the caller's controller, issuing a new session cookie when needed
func (h *Handler) session(w http.ResponseWriter, r *http.Request, logMessageBuilder *strings.Builder) *view.Controller {
	id, controller, created := h.Sessions.Get(sessionID(r))
	if created {
		utils.AddToLogMessage(logMessageBuilder, "New session: "+id)
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return controller
}

// currentState is the caller's view state. Callers without a live session see
// the initial state and no session is created for them.
func (h *Handler) currentState(r *http.Request) view.State {
	if controller, ok := h.Sessions.Lookup(sessionID(r)); ok {
		return controller.Snapshot()
	}
	return view.InitialState()
}

// HealthHandler reports that the server is up
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
