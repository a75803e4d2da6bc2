package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Pierrechami/movies/config"
	"github.com/Pierrechami/movies/db"
	"github.com/Pierrechami/movies/internal/server"
	"github.com/Pierrechami/movies/pkg/constant"
)

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.Env == "development" {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithTimeout(context.Background(), constant.MongoConnectTimeout)
	defer cancel()

	client, err := db.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	app := server.New(cfg, log, client.Database(cfg.MongoDatabase))

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
