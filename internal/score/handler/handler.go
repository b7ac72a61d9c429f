// Package handler wires the score catalog and calculation endpoints to the
// score service. It stays transport-only: decoding, routing, logging, and
// error envelope translation, with every calculation delegated to the service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"medcalc/internal/score"
	"medcalc/pkg/platform/httputil"
	"medcalc/pkg/requestcontext"
)

// Service defines the score operations the HTTP layer depends on.
type Service interface {
	Dispatch(ctx context.Context, id string, raw map[string]any) (*score.Result, error)
	Registry() *score.Registry
}

// Handler wires score endpoints to the score service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a score handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts score endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/scores", h.HandleList)
	r.Get("/api/scores/{score_id}", h.HandleMetadata)
	r.Get("/api/categories", h.HandleCategories)
	r.Post("/api/{score_id}/calculate", h.HandleCalculate)
}

// HandleList handles GET /api/scores requests, with optional category and
// search filters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	infos := h.service.Registry().List(q.Get("category"), q.Get("search"))
	httputil.WriteJSON(w, http.StatusOK, ListResponse{Scores: infos, Count: len(infos)})
}

// HandleMetadata handles GET /api/scores/{score_id} requests.
func (h *Handler) HandleMetadata(w http.ResponseWriter, r *http.Request) {
	md, err := h.service.Registry().Metadata(chi.URLParam(r, "score_id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, md)
}

// HandleCategories handles GET /api/categories requests.
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.service.Registry().Categories()
	httputil.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: cats, Count: len(cats)})
}

// HandleCalculate handles POST /api/{score_id}/calculate requests.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	scoreID := chi.URLParam(r, "score_id")
	start := time.Now()

	// The request body is the raw parameter mapping itself, not a wrapper
	// object, so callers can post exactly what the metadata endpoint documents.
	var req CalculateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.logger.DebugContext(ctx, "malformed calculation request",
			"request_id", requestID,
			"score_id", scoreID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Dispatch(ctx, scoreID, req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "score calculated",
		"request_id", requestID,
		"score_id", scoreID,
		"stage", result.Stage,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(scoreID, result))
}
