package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bimakw/wallet-scorer/internal/application/services"
	"github.com/bimakw/wallet-scorer/internal/config"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/analytics"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/cache"
	"github.com/bimakw/wallet-scorer/internal/infrastructure/database"
)

const scoreTimeout = 60 * time.Second

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <wallet-address>\n", os.Args[0])
		os.Exit(2)
	}

	address := strings.TrimSpace(os.Args[1])
	if !common.IsHexAddress(address) {
		fmt.Fprintf(os.Stderr, "invalid wallet address: %s\n", address)
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout carries only the score JSON
	logger := setupLogger(cfg.Log.Level)
	defer logger.Sync()

	// Connect to the registry database
	db, err := database.NewPostgresDB(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Create repositories and the registry caches over them
	rankRepo := database.NewRankRepo(db.DB())
	registryRepo := database.NewTokenRegistryRepo(db.DB())
	rankCache := cache.NewRankCache(rankRepo, logger)
	memeCache := cache.NewMemeTokenCache(registryRepo, logger)

	// Create the analytics fan-out fetcher
	analyticsClient := analytics.NewClient(cfg.Analytics, logger)
	fetcher := analytics.NewFetcher(analyticsClient, logger)

	// One-shot run; the response cache adds nothing here
	scoreService := services.NewScoreService(fetcher, rankCache, memeCache, nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
	defer cancel()

	response, err := scoreService.CalculateWalletScore(ctx, address)
	if err != nil {
		logger.Fatal("Failed to calculate wallet score",
			zap.Error(err),
			zap.String("address", address),
		)
	}

	out, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode score", zap.Error(err))
	}

	fmt.Println(string(out))
}

func setupLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := config.Build()
	return logger
}
