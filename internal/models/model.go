// internal/models/model.go
package models

import "github.com/lokeshpolkam/college-recommendation-system/internal/match"

// DefaultRating is the value-for-money score used when no rating evidence
// exists for a college. Entries carrying it are counted separately in the
// run metadata.
const DefaultRating = 3.0

// CategoryStats holds the folded rank range for one reservation category
// within a college-branch entry. Years and Rounds are serialized as sorted
// lists; in memory they are built from sets inside the trainer.
type CategoryStats struct {
	MinRank int   `json:"min_rank"`
	MaxRank int   `json:"max_rank"`
	Count   int   `json:"count"`
	Years   []int `json:"years"`
	Rounds  []int `json:"rounds"`
}

// ModelEntry is the aggregate for one "College - Branch" key.
type ModelEntry struct {
	Categories    map[string]CategoryStats `json:"categories"`
	ValueForMoney float64                  `json:"value_for_money"`
	College       string                   `json:"college"`
	Branch        string                   `json:"branch"`
	DataPoints    int                      `json:"data_points"`
}

// RatingStats summarizes value-for-money coverage across the model.
type RatingStats struct {
	Average  float64 `json:"average"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	WithData int     `json:"with_data"`
}

// Metadata describes one training run.
type Metadata struct {
	Timestamp           string      `json:"timestamp"`
	RunID               string      `json:"run_id"`
	TotalCombinations   int         `json:"total_combinations"`
	CategoriesAvailable []string    `json:"categories_available"`
	VFMStats            RatingStats `json:"vfm_stats"`
}

// Model is the aggregate root produced by a training run and the sole
// contract between the trainer and the recommender. Once persisted it is
// treated as an immutable snapshot.
type Model struct {
	Entries         map[string]*ModelEntry `json:"model"`
	CollegeMappings match.CollegeMapping   `json:"college_mappings"`
	Metadata        Metadata               `json:"metadata"`
}

// Empty reports whether the model carries no usable entries, which the
// query layer reports as "no model available" rather than an error.
func (m *Model) Empty() bool {
	return m == nil || len(m.Entries) == 0
}
