package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// PortfolioHandler serves the portfolio record.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a PortfolioHandler with the given service.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// Get handles GET /api/portfolio (public). The response is marked
// no-store so admin edits show up on the next page load.
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.portfolioService.Get(r.Context())
	if err != nil {
		slog.Error("portfolio read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "fetch_failed")
		return
	}

	setNoStore(w)
	writeJSON(w, http.StatusOK, record)
}

// Update handles PUT /api/portfolio (auth required, enforced by
// middleware). The body must be the complete record: the whole stored
// document is replaced, so fields missing from the payload are lost.
func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	// "null" decodes into the zero record without error; only a real
	// JSON object may replace the document.
	var record model.PortfolioRecord
	if err := json.Unmarshal(raw, &record); err != nil || string(bytes.TrimSpace(raw)) == "null" {
		writeError(w, http.StatusBadRequest, "invalid_data_format")
		return
	}

	if err := h.portfolioService.Replace(r.Context(), &record); err != nil {
		slog.Error("portfolio write failed", "error", err)
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	setNoStore(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
