// internal/storage/store.go

// Package storage persists trained models as JSON documents. Writes are
// atomic (temp file plus rename) so a crashed run can never leave a
// half-written model behind, and loads are schema-validated before the
// document is trusted.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/errors"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
)

// modelSchema is the contract a persisted model document must satisfy
// before the recommender will serve from it.
const modelSchema = `{
	"type": "object",
	"required": ["model", "college_mappings", "metadata"],
	"properties": {
		"model": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"required": ["categories", "value_for_money", "college", "branch", "data_points"],
				"properties": {
					"categories": {
						"type": "object",
						"additionalProperties": {
							"type": "object",
							"required": ["min_rank", "max_rank", "count"],
							"properties": {
								"min_rank": {"type": "integer", "minimum": 1},
								"max_rank": {"type": "integer", "minimum": 1},
								"count": {"type": "integer", "minimum": 1},
								"years": {"type": "array", "items": {"type": "integer"}},
								"rounds": {"type": "array", "items": {"type": "integer"}}
							}
						}
					},
					"value_for_money": {"type": "number", "minimum": 0, "maximum": 5},
					"college": {"type": "string", "minLength": 1},
					"branch": {"type": "string", "minLength": 1},
					"data_points": {"type": "integer", "minimum": 1}
				}
			}
		},
		"college_mappings": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"required": ["vfm_name", "match_score"],
				"properties": {
					"vfm_name": {"type": "string"},
					"match_score": {"type": "integer", "minimum": 0, "maximum": 100}
				}
			}
		},
		"metadata": {
			"type": "object",
			"required": ["timestamp", "total_combinations"],
			"properties": {
				"timestamp": {"type": "string"},
				"run_id": {"type": "string"},
				"total_combinations": {"type": "integer", "minimum": 0}
			}
		}
	}
}`

// Store reads and writes model documents at a fixed path.
type Store struct {
	path   string
	logger logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	return &Store{path: path, logger: log}
}

// Path returns the model file location.
func (s *Store) Path() string {
	return s.path
}

// Save writes the model atomically: marshal to a temp file in the target
// directory, then rename over the destination.
func (s *Store) Save(model *models.Model) error {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return errors.NewModelSaveFailedError(err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewModelSaveFailedError(err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return errors.NewModelSaveFailedError(err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewModelSaveFailedError(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewModelSaveFailedError(err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.NewModelSaveFailedError(err)
	}

	s.logger.Info("Model saved", map[string]interface{}{
		"path":         s.path,
		"combinations": model.Metadata.TotalCombinations,
		"bytes":        len(data),
	})
	return nil
}

// Load reads and validates the model document. A missing file is reported
// as ErrCodeModelNotFound so callers can distinguish "not trained yet" from
// a corrupt document.
func (s *Store) Load() (*models.Model, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewModelNotFoundError(s.path)
		}
		return nil, errors.NewModelLoadFailedError(err)
	}

	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var model models.Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, errors.NewModelLoadFailedError(err)
	}

	s.logger.Info("Model loaded", map[string]interface{}{
		"path":         s.path,
		"combinations": model.Metadata.TotalCombinations,
		"runId":        model.Metadata.RunID,
	})
	return &model, nil
}

func validateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(modelSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewModelValidationFailedError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return errors.NewModelValidationFailedError(strings.Join(details, "; "))
	}
	return nil
}
