package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nidhogg/jobscout/internal/catalog"
	"github.com/nidhogg/jobscout/internal/chat"
	"github.com/nidhogg/jobscout/internal/gateway"
	"github.com/nidhogg/jobscout/internal/metrics"
	"go.uber.org/zap"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	registry *chat.Registry
	catalog  *catalog.Catalog
	gw       *gateway.Manager
	ws       *gateway.WebSocketAdapter
	metrics  *metrics.Manager
	logger   *zap.Logger
}

// NewHandler creates a new API handler. metrics may be nil, which
// disables the /metrics endpoint.
func NewHandler(
	registry *chat.Registry,
	cat *catalog.Catalog,
	gw *gateway.Manager,
	ws *gateway.WebSocketAdapter,
	m *metrics.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		registry: registry,
		catalog:  cat,
		gw:       gw,
		ws:       ws,
		metrics:  m,
		logger:   logger,
	}
}

// Router builds the chi router with all routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", h.healthCheck)
	r.Get("/api/catalog", h.getCatalog)
	r.Get("/ws", h.ws.Handler())
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	return r
}

// healthCheck reports liveness, live session count, and registered
// transports.
func (h *Handler) healthCheck(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": h.registry.Count(),
		"gateways": h.gw.Platforms(),
	})
}

// getCatalog returns the full role catalog.
func (h *Handler) getCatalog(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Roles())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response failed", zap.Error(err))
	}
}
