package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "github.com/lokeshpolkam/college-recommendation-system/internal/common/errors"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
	"github.com/lokeshpolkam/college-recommendation-system/internal/match"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
)

func testModel() *models.Model {
	return &models.Model{
		Entries: map[string]*models.ModelEntry{
			"IIT Bombay - Computer Science": {
				Categories: map[string]models.CategoryStats{
					"OPEN": {MinRank: 5, MaxRank: 50, Count: 2, Years: []int{2023}, Rounds: []int{1, 2}},
				},
				ValueForMoney: 4.8,
				College:       "IIT Bombay",
				Branch:        "Computer Science",
				DataPoints:    2,
			},
		},
		CollegeMappings: match.CollegeMapping{
			"INDIAN INSTITUTE OF TECH BOMBAY": {RatingName: "INDIAN INSTITUTE OF TECH BOMBAY", Score: 100},
		},
		Metadata: models.Metadata{
			Timestamp:           "2024-06-01T00:00:00Z",
			RunID:               "run-1",
			TotalCombinations:   1,
			CategoriesAvailable: []string{"OPEN"},
			VFMStats:            models.RatingStats{Average: 4.8, Min: 4.8, Max: 4.8, WithData: 1},
		},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	store := NewStore(path, logger.NewTestLogger(t))

	require.NoError(t, store.Save(testModel()))

	loaded, err := store.Load()
	require.NoError(t, err)

	entry := loaded.Entries["IIT Bombay - Computer Science"]
	require.NotNil(t, entry)
	assert.Equal(t, 4.8, entry.ValueForMoney)
	assert.Equal(t, 5, entry.Categories["OPEN"].MinRank)
	assert.Equal(t, []int{1, 2}, entry.Categories["OPEN"].Rounds)
	assert.Equal(t, "run-1", loaded.Metadata.RunID)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "model.json"), logger.NewTestLogger(t))

	require.NoError(t, store.Save(testModel()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "model.json", entries[0].Name())
}

func TestLoadMissingModel(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "model.json"), logger.NewTestLogger(t))

	_, err := store.Load()
	require.Error(t, err)
	code, ok := commonerrors.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeModelNotFound, code)
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model": "not an object"}`), 0o644))

	store := NewStore(path, logger.NewTestLogger(t))
	_, err := store.Load()
	require.Error(t, err)
	code, ok := commonerrors.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, commonerrors.ErrCodeModelValidationFailed, code)
}

func TestSaveOverwritesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	store := NewStore(path, logger.NewTestLogger(t))

	first := testModel()
	require.NoError(t, store.Save(first))

	second := testModel()
	second.Metadata.RunID = "run-2"
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "run-2", loaded.Metadata.RunID)
}
