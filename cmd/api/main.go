package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/partdepot-backend/api/routes"
	"github.com/angelmondragon/partdepot-backend/internal/assist"
	"github.com/angelmondragon/partdepot-backend/internal/cart"
	"github.com/angelmondragon/partdepot-backend/internal/marketplace"
	"github.com/angelmondragon/partdepot-backend/pkg/ai"
	"github.com/angelmondragon/partdepot-backend/pkg/config"
	"github.com/angelmondragon/partdepot-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	engine := marketplace.NewEngine(marketplace.Options{
		AutoApproveSellers: cfg.Marketplace.AutoApproveSellers,
	})
	carts := cart.NewService()

	// Assist endpoints stay routable without a key; calls then fail with a
	// dependency error instead of blocking boot.
	var assistClient *ai.Client
	if cfg.Assist.APIKey != "" {
		assistClient, err = ai.NewClient(cfg.Assist.APIKey, ai.WithBaseURL(cfg.Assist.BaseURL))
		if err != nil {
			logg.Error(context.Background(), "failed to create assist client", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "assist api key not set, assist endpoints disabled")
	}
	assistService := assist.NewService(assistClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, engine, carts, assistService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
