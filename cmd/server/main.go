package main

import (
	"context"
	"net/http"
	"os"

	"gomarket/internal/app/server/api"
	"gomarket/internal/app/server/config"
	"gomarket/internal/infrastructure/storage/postgres"
	"gomarket/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := postgres.New(context.Background(), cfg)
	if err != nil {
		log.Error("не удалось открыть хранилище", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	router := api.New(storage, cfg.Secret, log)

	log.Info("сервер запущен", "address", cfg.Server.RunAddress, "env", cfg.Env)
	if err := http.ListenAndServe(cfg.Server.RunAddress, router); err != nil {
		log.Error("сервер остановлен", "error", err)
		os.Exit(1)
	}
}
