package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bimakw/wallet-scorer/internal/application/services"
	"github.com/bimakw/wallet-scorer/internal/domain/entities"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/cache"
	"github.com/bimakw/wallet-scorer/internal/testutil"
)

func setupRankHandlerTest() (*RankHandler, *testutil.MockRankRepository) {
	rankRepo := testutil.NewMockRankRepository()
	logger := zap.NewNop()

	service := services.NewRankService(cache.NewRankCache(rankRepo, logger), logger)
	handler := NewRankHandler(service, logger)

	return handler, rankRepo
}

func TestNewRankHandler(t *testing.T) {
	handler, _ := setupRankHandlerTest()
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}
}

func TestRankHandler_GetRanks_Success(t *testing.T) {
	handler, rankRepo := setupRankHandlerTest()
	rankRepo.SetRanks(testutil.DefaultRankTable()...)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/ranks", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response services.RanksResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response.Data) != 4 {
		t.Fatalf("expected 4 ranks, got %d", len(response.Data))
	}
	if response.Data[0].Name != "Bronze" {
		t.Errorf("expected Bronze first, got %s", response.Data[0].Name)
	}
	if response.Data[3].MaxPoints != nil {
		t.Errorf("expected open-ended top rank, got %v", *response.Data[3].MaxPoints)
	}
}

func TestRankHandler_GetRanks_EmptyListOnRegistryFailure(t *testing.T) {
	handler, rankRepo := setupRankHandlerTest()
	rankRepo.GetActiveFunc = func(ctx context.Context) ([]entities.Rank, error) {
		return nil, errors.New("registry down")
	}

	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/ranks", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("expected data to serialize as [], got %s", raw["data"])
	}
}
