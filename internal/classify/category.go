package classify

import "strings"

// Category is one member of the fixed reservation-category taxonomy.
type Category string

const (
	CategoryOpen    Category = "OPEN"
	CategoryOBC     Category = "OBC-NCL"
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
	CategoryEWS     Category = "EWS"
	CategoryGeneral Category = "GENERAL"
)

// SeatType maps a raw seat-type string to a reservation category. Checks run
// in fixed priority order and the first match wins. A seat type carrying PWD
// deliberately falls through the OPEN rule, so "OPEN (PwD)" resolves to
// GENERAL rather than OPEN.
func SeatType(seatType string) Category {
	upper := strings.ToUpper(seatType)

	switch {
	case strings.Contains(upper, "OPEN") && !strings.Contains(upper, "PWD"):
		return CategoryOpen
	case strings.Contains(upper, "OBC"):
		return CategoryOBC
	case strings.Contains(upper, "SC"):
		return CategorySC
	case strings.Contains(upper, "ST"):
		return CategoryST
	case strings.Contains(upper, "EWS"):
		return CategoryEWS
	default:
		return CategoryGeneral
	}
}
