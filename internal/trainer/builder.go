// internal/trainer/builder.go
package trainer

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lokeshpolkam/college-recommendation-system/internal/classify"
	"github.com/lokeshpolkam/college-recommendation-system/internal/match"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
	"github.com/lokeshpolkam/college-recommendation-system/internal/normalize"
	"github.com/lokeshpolkam/college-recommendation-system/internal/rating"
)

// categoryAgg accumulates rank evidence for one reservation category. Years
// and rounds are sets while building and become sorted slices at finalize.
type categoryAgg struct {
	minRank int
	maxRank int
	count   int
	years   map[int]struct{}
	rounds  map[int]struct{}
}

// entryAgg is the mutable aggregate behind one "College - Branch" key.
type entryAgg struct {
	college    string
	branch     classify.Branch
	rating     float64
	dataPoints int
	categories map[string]*categoryAgg
}

// Builder folds admission records into per college-branch aggregates. The
// value-for-money rating is resolved once when a key is first seen and never
// revisited, so later records cannot shift it.
type Builder struct {
	resolver *rating.Resolver
	entries  map[string]*entryAgg
	ingested int
	skipped  int
}

// NewBuilder creates an empty builder bound to a rating resolver.
func NewBuilder(resolver *rating.Resolver) *Builder {
	return &Builder{
		resolver: resolver,
		entries:  make(map[string]*entryAgg),
	}
}

// Ingest folds one admission record into the aggregates. It returns false
// when the record contributed no rank evidence, either because the institute
// name was blank or because a rank carried the zero sentinel.
//
// Entries are keyed by the raw trimmed institute name as it appears in the
// source data; normalization is only the join key into the rating mapping.
func (b *Builder) Ingest(rec models.AdmissionRecord) bool {
	college := strings.TrimSpace(rec.Institute)
	if college == "" {
		b.skipped++
		return false
	}
	branch := classify.Program(rec.Program)
	key := fmt.Sprintf("%s - %s", college, branch)

	entry, ok := b.entries[key]
	if !ok {
		entry = &entryAgg{
			college:    college,
			branch:     branch,
			rating:     b.resolver.Resolve(normalize.CollegeName(college), branch),
			categories: make(map[string]*categoryAgg),
		}
		b.entries[key] = entry
	}

	if rec.OpeningRank <= 0 || rec.ClosingRank <= 0 {
		b.skipped++
		return false
	}

	category := string(classify.SeatType(rec.SeatType))
	agg, ok := entry.categories[category]
	if !ok {
		agg = &categoryAgg{
			minRank: rec.OpeningRank,
			maxRank: rec.ClosingRank,
			years:   make(map[int]struct{}),
			rounds:  make(map[int]struct{}),
		}
		entry.categories[category] = agg
	}
	if rec.OpeningRank < agg.minRank {
		agg.minRank = rec.OpeningRank
	}
	if rec.ClosingRank > agg.maxRank {
		agg.maxRank = rec.ClosingRank
	}
	agg.count++
	agg.years[rec.Year] = struct{}{}
	agg.rounds[rec.Round] = struct{}{}

	entry.dataPoints++
	b.ingested++
	return true
}

// Ingested returns the number of records that contributed rank evidence.
func (b *Builder) Ingested() int { return b.ingested }

// Skipped returns the number of records rejected during ingestion.
func (b *Builder) Skipped() int { return b.skipped }

// Finalize freezes the aggregates into a model. Entries that accumulated no
// rank evidence are dropped, category sets become sorted slices, and run
// metadata is stamped. The builder must not be reused afterwards.
func (b *Builder) Finalize(mapping match.CollegeMapping) *models.Model {
	entries := make(map[string]*models.ModelEntry, len(b.entries))
	categorySet := make(map[string]struct{})

	var (
		ratingSum          float64
		ratingMin          float64
		ratingMax          float64
		ratingWithData     int
		ratingBoundsChosen bool
	)

	for key, agg := range b.entries {
		if agg.dataPoints == 0 {
			continue
		}
		entry := &models.ModelEntry{
			Categories:    make(map[string]models.CategoryStats, len(agg.categories)),
			ValueForMoney: agg.rating,
			College:       agg.college,
			Branch:        string(agg.branch),
			DataPoints:    agg.dataPoints,
		}
		for category, stats := range agg.categories {
			entry.Categories[category] = models.CategoryStats{
				MinRank: stats.minRank,
				MaxRank: stats.maxRank,
				Count:   stats.count,
				Years:   sortedInts(stats.years),
				Rounds:  sortedInts(stats.rounds),
			}
			categorySet[category] = struct{}{}
		}
		entries[key] = entry

		ratingSum += agg.rating
		if !ratingBoundsChosen || agg.rating < ratingMin {
			ratingMin = agg.rating
		}
		if !ratingBoundsChosen || agg.rating > ratingMax {
			ratingMax = agg.rating
		}
		ratingBoundsChosen = true
		if agg.rating != models.DefaultRating {
			ratingWithData++
		}
	}

	stats := models.RatingStats{WithData: ratingWithData}
	if len(entries) > 0 {
		stats.Average = round2(ratingSum / float64(len(entries)))
		stats.Min = ratingMin
		stats.Max = ratingMax
	}

	categories := make([]string, 0, len(categorySet))
	for category := range categorySet {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return &models.Model{
		Entries:         entries,
		CollegeMappings: mapping,
		Metadata: models.Metadata{
			Timestamp:           time.Now().UTC().Format(time.RFC3339),
			RunID:               uuid.NewString(),
			TotalCombinations:   len(entries),
			CategoriesAvailable: categories,
			VFMStats:            stats,
		},
	}
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
