package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rpgo/compound-calculator/internal/cache"
	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/domain"
)

const maxBodyBytes = 1 << 20

// Handler serves the projection API.
type Handler struct {
	engine   *calculation.ProjectionEngine
	cache    cache.ResultCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewHandler builds a Handler. A nil cache disables caching; a nil logger uses slog.Default.
func NewHandler(engine *calculation.ProjectionEngine, c cache.ResultCache, ttl time.Duration, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{engine: engine, cache: c, cacheTTL: ttl, logger: logger}
}

type projectionResponse struct {
	Result     domain.ProjectionResult      `json:"result"`
	Indicators domain.PerformanceIndicators `json:"indicators"`
	Yearly     []domain.YearlySnapshot      `json:"yearly"`
	Cached     bool                         `json:"cached"`
}

type sensitivityRequest struct {
	Parameters json.RawMessage             `json:"parameters"`
	Sweep      domain.SensitivityParameter `json:"sweep"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Projection handles POST /v1/projection. Fields missing from the body take
// their default values.
func (h *Handler) Projection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	params, ok := h.decodeParameters(w, r.Body)
	if !ok {
		return
	}

	result, cached := h.project(r.Context(), params)
	writeJSON(w, http.StatusOK, projectionResponse{
		Result:     result,
		Indicators: calculation.CalculateIndicators(params, result),
		Yearly:     calculation.YearlySnapshots(result),
		Cached:     cached,
	})
}

// Sensitivity handles POST /v1/sensitivity.
func (h *Handler) Sensitivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req sensitivityRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	params := domain.DefaultInputParameters()
	if len(req.Parameters) > 0 {
		if err := json.Unmarshal(req.Parameters, &params); err != nil {
			writeError(w, http.StatusBadRequest, "invalid parameters")
			return
		}
	}
	if err := config.ValidateParameters(params); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	analysis, err := h.engine.Sweep(params, req.Sweep)
	if err != nil {
		if errors.Is(err, calculation.ErrUnknownParameter) || errors.Is(err, calculation.ErrInvalidSweep) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("sweep failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// WhatIf handles POST /v1/what-if.
func (h *Handler) WhatIf(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	params, ok := h.decodeParameters(w, r.Body)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.engine.WhatIfs(params))
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeParameters(w http.ResponseWriter, body io.Reader) (domain.InputParameters, bool) {
	params := domain.DefaultInputParameters()
	if err := json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return params, false
	}
	if err := config.ValidateParameters(params); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return params, false
	}
	return params, true
}

// project consults the cache by input equality. Cache failures are logged and
// the projection is computed as if the entry were missing.
func (h *Handler) project(ctx context.Context, params domain.InputParameters) (domain.ProjectionResult, bool) {
	if h.cache == nil {
		return h.engine.Project(params), false
	}

	key := cache.KeyFor(params)
	if cached, ok, err := h.cache.Get(ctx, key); err != nil {
		h.logger.Warn("cache get failed", "key", key, "error", err)
	} else if ok {
		return *cached, true
	}

	result := h.engine.Project(params)
	if err := h.cache.Set(ctx, key, &result, h.cacheTTL); err != nil {
		h.logger.Warn("cache set failed", "key", key, "error", err)
	}
	return result, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
