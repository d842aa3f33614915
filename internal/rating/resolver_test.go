package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lokeshpolkam/college-recommendation-system/internal/classify"
	"github.com/lokeshpolkam/college-recommendation-system/internal/match"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
)

func TestResolveBranchMatched(t *testing.T) {
	mapping := match.CollegeMapping{
		"INDIAN INSTITUTE OF TECH BOMBAY": {RatingName: "INDIAN INSTITUTE OF TECH BOMBAY", Score: 100},
	}
	rows := []models.RatingRecord{
		{Institute: "IIT Bombay", Course: "Computer Science and Engineering", Rating: 4.5},
		{Institute: "IIT Bombay", Course: "B.Tech Computer Science", Rating: 4.0},
		{Institute: "IIT Bombay", Course: "Civil Engineering", Rating: 3.0},
	}
	r := NewResolver(mapping, rows)

	got := r.Resolve("INDIAN INSTITUTE OF TECH BOMBAY", classify.BranchComputerScience)
	assert.Equal(t, 4.25, got)
}

func TestResolveCollegeAverageFallback(t *testing.T) {
	mapping := match.CollegeMapping{
		"SOME COLLEGE": {RatingName: "SOME COLLEGE", Score: 100},
	}
	rows := []models.RatingRecord{
		{Institute: "Some College", Course: "Civil Engineering", Rating: 4.0},
		{Institute: "Some College", Course: "Mechanical Engineering", Rating: 2.0},
	}
	r := NewResolver(mapping, rows)

	// No chemical rows, so the college mean of 3.0 is discounted to 2.4.
	got := r.Resolve("SOME COLLEGE", classify.BranchChemical)
	assert.Equal(t, 2.4, got)
}

func TestResolveOtherRowDiscountedForConcreteBranch(t *testing.T) {
	mapping := match.CollegeMapping{
		"SOME COLLEGE": {RatingName: "SOME COLLEGE", Score: 100},
	}
	rows := []models.RatingRecord{
		{Institute: "Some College", Course: "Fashion Design", Rating: 2.0},
	}
	r := NewResolver(mapping, rows)

	// The unclassifiable row still contributes, at 0.7 weight, rather than
	// pushing the lookup down to the college-average tier.
	got := r.Resolve("SOME COLLEGE", classify.BranchCivil)
	assert.Equal(t, 1.4, got)
}

func TestResolveOtherMatchesOtherAtFullWeight(t *testing.T) {
	mapping := match.CollegeMapping{
		"SOME COLLEGE": {RatingName: "SOME COLLEGE", Score: 100},
	}
	rows := []models.RatingRecord{
		{Institute: "Some College", Course: "Fashion Design", Rating: 2.0},
	}
	r := NewResolver(mapping, rows)

	// Both sides classify to Other, which is an exact agreement, not a
	// mismatch, so no discount applies.
	got := r.Resolve("SOME COLLEGE", classify.BranchOther)
	assert.Equal(t, 2.0, got)
}

func TestResolveMixedWeights(t *testing.T) {
	mapping := match.CollegeMapping{
		"SOME COLLEGE": {RatingName: "SOME COLLEGE", Score: 100},
	}
	rows := []models.RatingRecord{
		{Institute: "Some College", Course: "Civil Engineering", Rating: 4.0},
		{Institute: "Some College", Course: "Fashion Design", Rating: 2.0},
	}
	r := NewResolver(mapping, rows)

	// One full-weight Civil row and one 0.7-weighted Other row: (4.0 + 1.4) / 2.
	got := r.Resolve("SOME COLLEGE", classify.BranchCivil)
	assert.Equal(t, 2.7, got)
}

func TestResolveDefaults(t *testing.T) {
	r := NewResolver(match.CollegeMapping{}, nil)

	assert.Equal(t, models.DefaultRating, r.Resolve("UNMAPPED COLLEGE", classify.BranchCivil))

	// Mapped but the rating sheet rows were all empty-named.
	mapping := match.CollegeMapping{"X": {RatingName: "GONE", Score: 90}}
	r = NewResolver(mapping, []models.RatingRecord{{Institute: "  ", Course: "Civil", Rating: 5}})
	assert.Equal(t, models.DefaultRating, r.Resolve("X", classify.BranchCivil))
}

func TestResolveRounding(t *testing.T) {
	mapping := match.CollegeMapping{
		"C": {RatingName: "C", Score: 100},
	}
	rows := []models.RatingRecord{
		{Institute: "C", Course: "Computer Science", Rating: 4.0},
		{Institute: "C", Course: "Computer Science", Rating: 4.0},
		{Institute: "C", Course: "Computer Science", Rating: 3.0},
	}
	r := NewResolver(mapping, rows)

	got := r.Resolve("C", classify.BranchComputerScience)
	assert.Equal(t, 3.67, got)
}
