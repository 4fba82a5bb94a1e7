package handlers

import (
	"net/http"

	"wordreader/internal/domain"
	"wordreader/internal/service"
)

// StatsHandler serves progress counts and static reference data
type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, h.stats.Summary(), http.StatusOK)
}

func (h *StatsHandler) Languages(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, domain.Languages(), http.StatusOK)
}

func Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"status": "ok"}, http.StatusOK)
}
