package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bimakw/wallet-scorer/internal/application/services"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/analytics"
)

// ScoreHandler handles HTTP requests for wallet scores
type ScoreHandler struct {
	service *services.ScoreService
	logger  *zap.Logger
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(service *services.ScoreService, logger *zap.Logger) *ScoreHandler {
	return &ScoreHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the score routes on a chi router
func (h *ScoreHandler) RegisterRoutes(r chi.Router) {
	r.Get("/wallets/{address}/score", h.GetWalletScore)
}

// GetWalletScore handles GET /api/v1/wallets/{address}/score
func (h *ScoreHandler) GetWalletScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address := chi.URLParam(r, "address")

	if !isValidAddress(address) {
		h.respondError(w, http.StatusBadRequest, "Invalid wallet address format")
		return
	}

	response, err := h.service.CalculateWalletScore(ctx, address)
	if err != nil {
		// Without the primary source there is no score to serve
		if errors.Is(err, analytics.ErrWalletStatsUnavailable) {
			h.logger.Warn("Wallet stats source unavailable",
				zap.Error(err),
				zap.String("address", address),
			)
			h.respondError(w, http.StatusBadGateway, "Wallet analytics temporarily unavailable")
			return
		}

		h.logger.Error("Failed to calculate wallet score",
			zap.Error(err),
			zap.String("address", address),
		)
		h.respondError(w, http.StatusInternalServerError, "Failed to calculate wallet score")
		return
	}

	h.respondJSON(w, http.StatusOK, response)
}

func (h *ScoreHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *ScoreHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func isValidAddress(addr string) bool {
	return common.IsHexAddress(addr)
}
