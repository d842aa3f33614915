package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatType(t *testing.T) {
	tests := []struct {
		name     string
		seatType string
		expected Category
	}{
		{"plain open", "OPEN", CategoryOpen},
		{"open with gender suffix", "OPEN (Gender-Neutral)", CategoryOpen},
		{"open with pwd resolves to general", "OPEN (PwD)", CategoryGeneral},
		{"obc ncl", "OBC-NCL", CategoryOBC},
		{"obc with pwd still obc", "OBC-NCL (PwD)", CategoryOBC},
		{"sc", "SC", CategorySC},
		{"st", "ST", CategoryST},
		{"ews", "EWS", CategoryEWS},
		{"unknown seat type", "Foreign Nationals", CategoryGeneral},
		{"empty input", "", CategoryGeneral},
		{"lowercase input", "open", CategoryOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeatType(tt.seatType))
		})
	}
}
