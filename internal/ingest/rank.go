// internal/ingest/rank.go
package ingest

import (
	"strconv"
	"strings"
)

// parseRank parses a raw rank cell. Rank values sometimes carry a trailing
// provisional marker letter ("123456P") and stray whitespace; some sheets
// also export ranks as decimals. The boolean is false when nothing numeric
// remains after stripping.
func parseRank(raw string) (int, bool) {
	cleaned := strings.ReplaceAll(raw, "P", "")
	cleaned = strings.ReplaceAll(cleaned, "p", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// ParseRank collapses parse failure into the zero sentinel. Zero is never a
// legitimate rank in the source data, so downstream aggregation treats it as
// "skip this record". Callers that need to distinguish should use parseRank.
func ParseRank(raw string) int {
	v, ok := parseRank(raw)
	if !ok {
		return 0
	}
	return v
}
