// Package api serves the persisted strain catalog over HTTP.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jfcharron/sqdc-strain-scraper/internal/models"
)

// StrainLister reads stored strains for a store.
type StrainLister interface {
	ListStrains(ctx context.Context, storeID int) ([]*models.Strain, error)
}

type Handlers struct {
	strains StrainLister
	logger  *slog.Logger
}

func NewHandlers(strains StrainLister) *Handlers {
	return &Handlers{
		strains: strains,
		logger:  slog.Default().With("component", "api"),
	}
}

// Router builds the service router.
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://localhost:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/strains", h.ListStrains)
	})

	return r
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// StrainsResponse is the catalog listing response.
type StrainsResponse struct {
	StoreID int              `json:"store_id"`
	Count   int              `json:"count"`
	Strains []*models.Strain `json:"strains"`
}

// ListStrains returns the stored catalog for a store, cheapest first.
func (h *Handlers) ListStrains(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.Atoi(r.URL.Query().Get("store_id"))
	if err != nil || storeID <= 0 {
		h.respondError(w, http.StatusBadRequest, "store_id query parameter is required")
		return
	}

	strains, err := h.strains.ListStrains(r.Context(), storeID)
	if err != nil {
		h.logger.Error("failed to list strains", "store_id", storeID, "error", err)
		h.respondError(w, http.StatusInternalServerError, "failed to list strains")
		return
	}

	h.respondJSON(w, http.StatusOK, StrainsResponse{
		StoreID: storeID,
		Count:   len(strains),
		Strains: strains,
	})
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
