package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRank(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"123456", 123456},
		{"123456P", 123456},
		{" 123 456 P ", 123456},
		{"42.0", 42},
		{"42.9", 42},
		{"  ", 0},
		{"", 0},
		{"0", 0},
		{"abc", 0},
		{"P", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRank(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParseRankDistinguishesFailure(t *testing.T) {
	// The internal form separates "parsed to zero" from "did not parse";
	// the exported sentinel conflates them on purpose.
	v, ok := parseRank("0")
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	_, ok = parseRank("n/a")
	assert.False(t, ok)
}
