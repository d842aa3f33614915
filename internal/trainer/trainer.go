// internal/trainer/trainer.go
package trainer

import (
	"sort"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/errors"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/metrics"
	"github.com/lokeshpolkam/college-recommendation-system/internal/match"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
	"github.com/lokeshpolkam/college-recommendation-system/internal/normalize"
	"github.com/lokeshpolkam/college-recommendation-system/internal/rating"
)

// Trainer runs the full training pipeline: fuzzy-bridge the two datasets,
// fold admission records into aggregates, and stamp the run metadata.
type Trainer struct {
	logger logger.Logger
}

func New(log logger.Logger) *Trainer {
	return &Trainer{logger: log}
}

// Train builds a model from admission records and rating sheet rows. It
// fails only when no record survives ingestion; individual bad records are
// counted and skipped.
func (t *Trainer) Train(records []models.AdmissionRecord, ratings []models.RatingRecord) (*models.Model, error) {
	sources := uniqueColleges(records)
	targets := uniqueRatingColleges(ratings)
	mapping := match.BuildMapping(sources, targets)
	metrics.CollegeMappingsCreated.Set(float64(len(mapping)))
	t.logger.Info("College mapping built", map[string]interface{}{
		"admissionColleges": len(sources),
		"ratingColleges":    len(targets),
		"mapped":            len(mapping),
	})

	builder := NewBuilder(rating.NewResolver(mapping, ratings))
	for _, rec := range records {
		if builder.Ingest(rec) {
			metrics.TrainingRecordsIngested.Inc()
		} else {
			metrics.TrainingRecordsSkipped.Inc()
		}
	}

	if builder.Ingested() == 0 {
		return nil, errors.NewNoTrainingDataError("every record was rejected during ingestion")
	}

	model := builder.Finalize(mapping)
	t.logger.Info("Training run complete", map[string]interface{}{
		"records":         len(records),
		"ingested":        builder.Ingested(),
		"skipped":         builder.Skipped(),
		"combinations":    model.Metadata.TotalCombinations,
		"categories":      model.Metadata.CategoriesAvailable,
		"ratingWithData":  model.Metadata.VFMStats.WithData,
		"ratingAverage":   model.Metadata.VFMStats.Average,
		"collegeMappings": len(model.CollegeMappings),
		"runId":           model.Metadata.RunID,
	})
	return model, nil
}

// uniqueColleges returns the sorted distinct normalized admission college
// names. Sorting keeps the mapping pass deterministic.
func uniqueColleges(records []models.AdmissionRecord) []string {
	set := make(map[string]struct{})
	for _, rec := range records {
		name := normalize.CollegeName(rec.Institute)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return sortedKeys(set)
}

func uniqueRatingColleges(ratings []models.RatingRecord) []string {
	set := make(map[string]struct{})
	for _, row := range ratings {
		name := normalize.CollegeName(row.Institute)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
