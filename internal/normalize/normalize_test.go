package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollegeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "expands IIT abbreviation",
			input:    "IIT Bombay",
			expected: "INDIAN INSTITUTE OF TECH BOMBAY",
		},
		{
			name:     "expands NIT abbreviation",
			input:    "NIT Trichy",
			expected: "NATIONAL INSTITUTE OF TECH TRICHY",
		},
		{
			name:     "collapses engineering and technology",
			input:    "College of Engineering and Technology",
			expected: "COLLEGE OF ENGG AND TECH",
		},
		{
			name:     "strips parentheses and ampersand",
			input:    "Dr. B.R. Ambedkar Institute (Jalandhar) & Campus",
			expected: "DR B R AMBEDKAR INSTITUTE JALANDHAR AND CAMPUS",
		},
		{
			name:     "collapses runs of whitespace",
			input:    "  Govt.   College    Pune ",
			expected: "GOVT COLLEGE PUNE",
		},
		{
			name:     "empty input maps to empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only maps to empty string",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CollegeName(tt.input))
		})
	}
}

func TestCollegeNameIdempotent(t *testing.T) {
	inputs := []string{
		"IIT Bombay",
		"NIT Trichy",
		"Indian Institute of Information Technology, Allahabad",
		"College of Engineering & Technology (Autonomous)",
		"some random text 123",
		"",
	}

	for _, in := range inputs {
		once := CollegeName(in)
		twice := CollegeName(once)
		assert.Equal(t, once, twice, "normalization must be idempotent for %q", in)
	}
}

func TestCollegeNameReplacementOrder(t *testing.T) {
	// The IIT rule precedes the IIIT rule, so an IIIT prefix is rewritten by
	// the IIT expansion first. This mirrors the historical behavior the rest
	// of the pipeline was tuned against.
	got := CollegeName("IIIT Hyderabad")
	assert.Contains(t, got, "INDIAN INSTITUTE OF TECH")
}
