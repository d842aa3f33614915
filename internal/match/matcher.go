// Package match reconciles institution names across the admission and
// rating datasets with approximate string matching.
package match

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// MinScore is the similarity threshold below which a candidate pairing is
// rejected and the source name stays unmapped.
const MinScore = 75

// Mapping holds the best rating-side counterpart for one normalized
// admission-side institution name.
type Mapping struct {
	RatingName string `json:"vfm_name"`
	Score      int    `json:"match_score"`
}

// CollegeMapping maps normalized admission-side names to their best
// rating-side match. At most one target per source; sources without a
// candidate scoring at least MinScore are absent.
type CollegeMapping map[string]Mapping

// BuildMapping computes the best rating-side match for every non-empty
// source name using token-sort-ratio similarity (0-100). Candidates are
// scanned in lexicographic order, so equal top scores resolve to the
// lexicographically smallest target; that makes the mapping deterministic
// across runs.
//
// The scan is O(len(sources) x len(targets)) string comparisons. Both sets
// are institution lists in the hundreds, so no blocking index is needed.
func BuildMapping(sources, targets []string) CollegeMapping {
	ordered := make([]string, 0, len(targets))
	for _, t := range targets {
		if t != "" {
			ordered = append(ordered, t)
		}
	}
	sort.Strings(ordered)

	mapping := make(CollegeMapping)
	if len(ordered) == 0 {
		return mapping
	}

	for _, source := range sources {
		if source == "" {
			continue
		}

		best := ""
		bestScore := -1
		for _, target := range ordered {
			score := fuzzy.TokenSortRatio(source, target)
			if score > bestScore {
				best = target
				bestScore = score
			}
		}

		if bestScore >= MinScore {
			mapping[source] = Mapping{RatingName: best, Score: bestScore}
		}
	}

	return mapping
}
