package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/compound-calculator/internal/cache"
	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(c cache.ResultCache) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(calculation.NewProjectionEngine(), c, time.Minute, logger)
}

func post(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestProjectionHandler_OK(t *testing.T) {
	h := newTestHandler(nil)
	w := post(h.Projection, "/v1/projection", `{"initialCapital": 10000, "monthlyContribution": 500}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp projectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 142023.50, resp.Result.FinalValue, 0.01)
	assert.Len(t, resp.Result.Data, 121)
	assert.Len(t, resp.Yearly, 11)
	assert.True(t, resp.Indicators.MultiplierDefined)
	assert.False(t, resp.Cached)
}

func TestProjectionHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/projection", nil)
	w := httptest.NewRecorder()
	h.Projection(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestProjectionHandler_BadRequest(t *testing.T) {
	h := newTestHandler(nil)
	w := post(h.Projection, "/v1/projection", `{invalid-json}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectionHandler_ValidationError(t *testing.T) {
	h := newTestHandler(nil)
	tests := []struct {
		name, body, want string
	}{
		{"negative capital", `{"initialCapital": -1}`, "initial capital cannot be negative"},
		{"unknown calculation", `{"calculationType": "forever"}`, "calculation type"},
		{"reversed ages", `{"calculationType": "ageRange", "currentAge": 60, "targetAge": 30}`, "before current age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(h.Projection, "/v1/projection", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.want)
		})
	}
}

func TestProjectionHandler_UsesCache(t *testing.T) {
	mem := cache.NewMemoryCache()
	h := newTestHandler(mem)

	first := post(h.Projection, "/v1/projection", `{}`)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, mem.Len())

	second := post(h.Projection, "/v1/projection", `{}`)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b projectionResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.False(t, a.Cached)
	assert.True(t, b.Cached)
	assert.Equal(t, a.Result, b.Result)
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (*domain.ProjectionResult, bool, error) {
	return nil, false, assert.AnError
}

func (failingCache) Set(context.Context, string, *domain.ProjectionResult, time.Duration) error {
	return assert.AnError
}

func TestProjectionHandler_CacheFailureStillProjects(t *testing.T) {
	h := newTestHandler(failingCache{})
	w := post(h.Projection, "/v1/projection", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSensitivityHandler(t *testing.T) {
	h := newTestHandler(nil)

	w := post(h.Sensitivity, "/v1/sensitivity", `{"parameters": {"interestRate": 8}, "sweep": {"name": "interest_rate", "min": 4, "max": 12, "steps": 3}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var analysis domain.SensitivityAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	require.Len(t, analysis.Points, 3)
	assert.Equal(t, 12.0, analysis.Points[2].Value)
	assert.InDelta(t, 142023.50, analysis.Points[2].FinalValue, 0.01)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"unknown parameter", `{"sweep": {"name": "salary", "min": 1, "max": 2, "steps": 2}}`, http.StatusUnprocessableEntity},
		{"bad steps", `{"sweep": {"name": "interest_rate", "min": 1, "max": 2, "steps": 1}}`, http.StatusUnprocessableEntity},
		{"too many steps", `{"parameters": {"investmentPeriod": 1000}, "sweep": {"name": "interest_rate", "min": 1, "max": 2, "steps": 2000}}`, http.StatusUnprocessableEntity},
		{"absurd steps", `{"sweep": {"name": "investment_period", "min": 1, "max": 1000, "steps": 9000000000000000000}}`, http.StatusUnprocessableEntity},
		{"invalid parameters", `{"parameters": {"withdrawalRate": 400}, "sweep": {"name": "interest_rate", "min": 1, "max": 2, "steps": 2}}`, http.StatusUnprocessableEntity},
		{"bad parameter json", `{"parameters": [1, 2], "sweep": {"name": "interest_rate"}}`, http.StatusBadRequest},
		{"bad body", `nope`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, post(h.Sensitivity, "/v1/sensitivity", tt.body).Code)
		})
	}
}

func TestWhatIfHandler(t *testing.T) {
	h := newTestHandler(nil)
	w := post(h.WhatIf, "/v1/what-if", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	var report domain.WhatIfReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Len(t, report.Variants, 3)
	assert.Equal(t, 120, report.HorizonMonths)

	req := httptest.NewRequest(http.MethodPut, "/v1/what-if", nil)
	rec := httptest.NewRecorder()
	h.WhatIf(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoutes(t *testing.T) {
	h := newTestHandler(nil)
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	srv := httptest.NewServer(Routes(h, limiter))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	codes := make([]int, 0, 3)
	for range 3 {
		resp, err := http.Post(srv.URL+"/v1/projection", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "health checks are not rate limited")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	go func() { done <- Serve(ctx, "127.0.0.1:0", http.NotFoundHandler(), logger) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
