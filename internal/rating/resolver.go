// internal/rating/resolver.go
package rating

import (
	"math"
	"strings"

	"github.com/lokeshpolkam/college-recommendation-system/internal/classify"
	"github.com/lokeshpolkam/college-recommendation-system/internal/match"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
	"github.com/lokeshpolkam/college-recommendation-system/internal/normalize"
)

// Resolver assigns a value-for-money rating to a college-branch pair using
// rating survey rows bridged through the fuzzy college mapping. Resolution
// walks three tiers: rows whose course classifies to the same branch, then
// the college-wide average, then the default.
type Resolver struct {
	mapping match.CollegeMapping
	// byCollege indexes rating rows by the normalized rating-sheet
	// college name, which is what mapping values point at.
	byCollege map[string][]models.RatingRecord
}

// NewResolver indexes the rating rows and binds them to the mapping built
// during the same training run. Rows with an empty institute are dropped.
func NewResolver(mapping match.CollegeMapping, rows []models.RatingRecord) *Resolver {
	idx := make(map[string][]models.RatingRecord)
	for _, row := range rows {
		name := normalize.CollegeName(row.Institute)
		if name == "" {
			continue
		}
		idx[name] = append(idx[name], row)
	}
	return &Resolver{mapping: mapping, byCollege: idx}
}

// Resolve returns the rating for the normalized form of an admission
// college name. Rows are collected per branch agreement: an equal branch
// (Other included) or one branch name containing the other counts at full
// weight, a mismatch through Other on either side counts at 0.7 weight, and
// anything else is left out. Only when no row is collected does the
// college-wide average apply, discounted to 0.8.
func (r *Resolver) Resolve(college string, branch classify.Branch) float64 {
	mapped, ok := r.mapping[college]
	if !ok {
		return models.DefaultRating
	}
	rows := r.byCollege[mapped.RatingName]
	if len(rows) == 0 {
		return models.DefaultRating
	}

	var (
		collectedSum float64
		collected    int
		totalSum     float64
	)
	for _, row := range rows {
		totalSum += row.Rating
		courseBranch := classify.Course(row.Course)
		switch {
		case courseBranch == branch ||
			strings.Contains(string(courseBranch), string(branch)) ||
			strings.Contains(string(branch), string(courseBranch)):
			collectedSum += row.Rating
			collected++
		case courseBranch == classify.BranchOther || branch == classify.BranchOther:
			collectedSum += row.Rating * 0.7
			collected++
		}
	}

	if collected > 0 {
		return round2(collectedSum / float64(collected))
	}
	return round2(totalSum / float64(len(rows)) * 0.8)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
