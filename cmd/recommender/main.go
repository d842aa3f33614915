// cmd/recommender/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/config"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/database"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
	"github.com/lokeshpolkam/college-recommendation-system/internal/server"
	"github.com/lokeshpolkam/college-recommendation-system/internal/storage"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting recommendation server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ctx := context.Background()

	store := storage.NewStore(cfg.Training.ModelPath, log)
	model, err := store.Load()
	if err != nil {
		zapLog.Fatal("model load failed, run the trainer first", zap.Error(err))
	}

	var cache *server.ResponseCache
	if cfg.Cache.Enabled {
		redisClient, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Fatal("redis failed", zap.Error(err))
		}
		defer redisClient.Close()
		if err := redisClient.Ping(ctx); err != nil {
			zapLog.Fatal("redis ping failed", zap.Error(err))
		}
		zapLog.Info("Redis connected successfully")

		cache = server.NewResponseCache(
			redisClient.Client,
			log,
			config.GetDuration(cfg.Cache.TTLSeconds*1000),
			model.Metadata.RunID,
		)
	}

	srv := server.New(cfg.Server, log, model, cache)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zapLog.Fatal("server failed", zap.Error(err))
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error during shutdown", zap.Error(err))
	}

	zapLog.Info("Recommendation server stopped gracefully")
}
