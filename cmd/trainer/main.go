// cmd/trainer/main.go
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/config"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/database"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
	"github.com/lokeshpolkam/college-recommendation-system/internal/ingest"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
	"github.com/lokeshpolkam/college-recommendation-system/internal/storage"
	"github.com/lokeshpolkam/college-recommendation-system/internal/trainer"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting trainer...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ctx := context.Background()
	start := time.Now()

	loader := ingest.NewLoader(log, cfg.Training)

	var (
		records []models.AdmissionRecord
		ratings []models.RatingRecord
	)
	switch cfg.Training.Source {
	case "postgres":
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			zapLog.Fatal("postgres failed", zap.Error(err))
		}
		defer pg.Close()
		if err := pg.Ping(ctx); err != nil {
			zapLog.Fatal("postgres ping failed", zap.Error(err))
		}

		source := ingest.NewArchiveSource(pg, log, cfg.Database.Postgres.Table)
		records, err = source.Load(ctx)
		if err != nil {
			zapLog.Fatal("archive load failed", zap.Error(err))
		}
		// The rating sheet always comes from the data directory; only
		// admission records live in the archive.
		_, ratings, _ = loader.LoadDir(cfg.Training.DataDir)
	default:
		records, ratings, err = loader.LoadDir(cfg.Training.DataDir)
		if err != nil {
			zapLog.Fatal("ingestion failed", zap.Error(err))
		}
	}

	if ratings == nil {
		log.Warn("No rating sheet found, all colleges get the default rating", map[string]interface{}{
			"dataDir": cfg.Training.DataDir,
		})
	}

	model, err := trainer.New(log).Train(records, ratings)
	if err != nil {
		zapLog.Fatal("training failed", zap.Error(err))
	}

	store := storage.NewStore(cfg.Training.ModelPath, log)
	if err := store.Save(model); err != nil {
		zapLog.Fatal("model save failed", zap.Error(err))
	}

	zapLog.Info("Trainer finished",
		zap.String("modelPath", cfg.Training.ModelPath),
		zap.Int("combinations", model.Metadata.TotalCombinations),
		zap.Duration("elapsed", time.Since(start)),
	)
}
