package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/growthmap/internal/contracts"
	"github.com/wonny/growthmap/internal/metrics"
	"github.com/wonny/growthmap/internal/report"
	"github.com/wonny/growthmap/pkg/logger"
)

// DatasetStore hands out session-scoped datasets
type DatasetStore interface {
	Get(ctx context.Context, sessionID string, seed int64) *contracts.Dataset
	Invalidate(sessionID string) bool
}

// DashboardHandler serves the dataset, detail and card endpoints
// SSOT: 대시보드 API 핸들러는 이 구조체에서만
type DashboardHandler struct {
	store       DatasetStore
	defaultSeed int64
	logger      *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(store DatasetStore, defaultSeed int64, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		store:       store,
		defaultSeed: defaultSeed,
		logger:      log,
	}
}

// dataset resolves the request's session dataset, writing a 400 on a bad seed
func (h *DashboardHandler) dataset(w http.ResponseWriter, r *http.Request) (*contracts.Dataset, bool) {
	seed, err := parseSeed(r, h.defaultSeed)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid seed")
		return nil, false
	}
	return h.store.Get(r.Context(), sessionID(r), seed), true
}

// detail resolves {ticker}, writing a 404 on a miss
func (h *DashboardHandler) detail(w http.ResponseWriter, r *http.Request) (report.Detail, bool) {
	ds, ok := h.dataset(w, r)
	if !ok {
		return report.Detail{}, false
	}

	ticker := mux.Vars(r)["ticker"]
	d, err := report.Lookup(ds, ticker)
	if errors.Is(err, contracts.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Unknown ticker: "+ticker)
		return report.Detail{}, false
	}
	return d, true
}

// DatasetResponse is the dataset listing payload
type DatasetResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Session string                   `json:"session"`
		Seed    int64                    `json:"seed"`
		Count   int                      `json:"count"`
		Records []contracts.EntityRecord `json:"records"`
	} `json:"data"`
}

// GetDataset returns records, optionally filtered by sector, largest first
// GET /api/dataset?sector=AI%20%26%20Cloud&sector=Others
func (h *DashboardHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w, r)
	if !ok {
		return
	}

	var sectors []contracts.Sector
	for _, s := range r.URL.Query()["sector"] {
		sectors = append(sectors, contracts.Sector(s))
	}

	resp := DatasetResponse{Success: true}
	resp.Data.Session = sessionID(r)
	resp.Data.Seed = ds.Seed
	resp.Data.Records = ds.Filter(sectors...)
	resp.Data.Count = len(resp.Data.Records)

	respondJSON(w, http.StatusOK, resp)
}

// GetSectors returns the distinct sectors for the filter widget
// GET /api/sectors
func (h *DashboardHandler) GetSectors(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    ds.Sectors(),
	})
}

// GetMacro returns the static macro panel
// GET /api/macro
func (h *DashboardHandler) GetMacro(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    report.Macro(),
	})
}

// GetStock returns the detail view for one ticker
// GET /api/stocks/{ticker}
func (h *DashboardHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	d, ok := h.detail(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    d,
	})
}

// GetTrend returns a freshly drawn 12-month price/EPS series
// GET /api/stocks/{ticker}/trend
func (h *DashboardHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	d, ok := h.detail(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"ticker": d.Record.Ticker,
			"points": metrics.TrendSeries(metrics.NewRenderSource()),
		},
	})
}

// GetVolume returns volume change plus a freshly drawn 10-day bar series
// GET /api/stocks/{ticker}/volume
func (h *DashboardHandler) GetVolume(w http.ResponseWriter, r *http.Request) {
	d, ok := h.detail(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"ticker":        d.Record.Ticker,
			"volume_change": d.Record.VolumeChange,
			"bars":          metrics.VolumeSeries(metrics.NewRenderSource()),
		},
	})
}

// GetCard renders the HTML action card
// GET /api/stocks/{ticker}/card
func (h *DashboardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	d, ok := h.detail(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.RenderCard(&buf, d); err != nil {
		h.logger.WithError(err).WithField("ticker", d.Record.Ticker).Error("Failed to render card")
		respondError(w, http.StatusInternalServerError, "Failed to render card")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Invalidate drops the session dataset so the next request rebuilds it
// POST /api/dataset/invalidate
func (h *DashboardHandler) Invalidate(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	existed := h.store.Invalidate(id)

	h.logger.WithSession(id).WithField("existed", existed).Info("Session dataset invalidated")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"invalidated": existed,
	})
}
