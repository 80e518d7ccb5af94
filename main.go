package main

import (
	"context"
	"fmt"
	"os"

	auction "auction-house/internal/auctionEngine"
	"auction-house/internal/clock"
	"auction-house/internal/config"
	"auction-house/internal/seed"
	"auction-house/internal/server"
	"auction-house/internal/store"
	"auction-house/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	client, err := store.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		utils.Fatal("Failed to connect to redis", map[string]any{"addr": cfg.Redis.Addr, "error": err.Error()})
	}
	redisStore := store.NewRedisStore(client)
	defer redisStore.Close()

	engine, err := auction.New(ctx, redisStore, clock.Real{}, auction.Seed{
		Items: seed.Items(),
		Users: seed.Users(),
	})
	if err != nil {
		utils.Fatal("Failed to initialize auction engine", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(engine, cfg.JWTSecret, cfg.TokenTTL)

	utils.Info("Starting auction server", map[string]any{"addr": cfg.Addr()})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
