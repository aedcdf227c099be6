package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bimakw/wallet-scorer/internal/application/services"
)

// RankHandler handles HTTP requests for the rank table
type RankHandler struct {
	service *services.RankService
	logger  *zap.Logger
}

// NewRankHandler creates a new rank handler
func NewRankHandler(service *services.RankService, logger *zap.Logger) *RankHandler {
	return &RankHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the rank routes on a chi router
func (h *RankHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ranks", h.GetRanks)
}

// GetRanks handles GET /api/v1/ranks
func (h *RankHandler) GetRanks(w http.ResponseWriter, r *http.Request) {
	response := h.service.GetActiveRanks(r.Context())
	h.respondJSON(w, http.StatusOK, response)
}

func (h *RankHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
