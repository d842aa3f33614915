// internal/query/recommend.go

// Package query filters and ranks the trained model for a candidate rank,
// reservation category, and optional branch preference.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/errors"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
)

// Chance tiers, ordered. The numeric score exists only to sort and to give
// callers a stable ordinal; the label is what users see.
const (
	chanceHigh    = 3.0
	chanceGood    = 2.0
	chanceMedium  = 1.5
	chanceLow     = 1.0
	chanceVeryLow = 0.5
)

// Recommendation is one ranked result row.
type Recommendation struct {
	College     string  `json:"college"`
	Branch      string  `json:"branch"`
	Category    string  `json:"category"`
	MinRank     int     `json:"minRank"`
	MaxRank     int     `json:"maxRank"`
	Chance      float64 `json:"chance"`
	ChanceLabel string  `json:"chanceLabel"`
	Rating      float64 `json:"rating"`
	Years       []int   `json:"years,omitempty"`
	Rounds      []int   `json:"rounds,omitempty"`
}

// Request is a validated recommendation query.
type Request struct {
	Category         string
	Rank             int
	BranchPreference string
}

// Validate reports invalid input as a distinct condition from an empty
// result set.
func (r Request) Validate() error {
	if r.Rank <= 0 {
		return errors.NewInvalidQueryInputError(fmt.Sprintf("rank must be positive, got %d", r.Rank))
	}
	if strings.TrimSpace(r.Category) == "" {
		return errors.NewInvalidQueryInputError("category is required")
	}
	return nil
}

// Recommend walks every model entry and returns matches ordered by
// descending chance, then descending rating. The walk iterates keys in
// sorted order so identical queries always produce identical output.
func Recommend(model *models.Model, req Request) ([]Recommendation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if model.Empty() {
		return nil, errors.NewModelNotFoundError("")
	}

	branchPref := strings.ToLower(strings.TrimSpace(req.BranchPreference))

	keys := make([]string, 0, len(model.Entries))
	for key := range model.Entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]Recommendation, 0)
	for _, key := range keys {
		entry := model.Entries[key]
		if branchPref != "" && !strings.Contains(strings.ToLower(entry.Branch), branchPref) {
			continue
		}
		stats, ok := entry.Categories[req.Category]
		if !ok {
			continue
		}

		chance, label := chanceTier(req.Rank, stats.MinRank, stats.MaxRank)
		results = append(results, Recommendation{
			College:     entry.College,
			Branch:      entry.Branch,
			Category:    req.Category,
			MinRank:     stats.MinRank,
			MaxRank:     stats.MaxRank,
			Chance:      chance,
			ChanceLabel: label,
			Rating:      entry.ValueForMoney,
			Years:       stats.Years,
			Rounds:      stats.Rounds,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Chance != results[j].Chance {
			return results[i].Chance > results[j].Chance
		}
		return results[i].Rating > results[j].Rating
	})
	return results, nil
}

// chanceTier places a candidate rank against a historical [min, max] range.
// A rank at or below the historical best always lands in the highest tier.
func chanceTier(rank, minRank, maxRank int) (float64, string) {
	if rank <= minRank {
		return chanceHigh, "High"
	}
	if rank <= maxRank {
		position := float64(rank-minRank) / float64(maxRank-minRank)
		if position <= 0.5 {
			return chanceGood, "Good"
		}
		return chanceMedium, "Medium"
	}
	overflow := float64(rank-maxRank) / float64(maxRank)
	if overflow <= 0.2 {
		return chanceLow, "Low"
	}
	return chanceVeryLow, "Very Low"
}
