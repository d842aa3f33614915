// internal/models/admission.go
package models

// AdmissionRecord is one raw seat-allotment row as read from an input file
// or the archive table. It is consumed immediately by the trainer and never
// persisted in this form.
type AdmissionRecord struct {
	Institute   string `json:"institute"`
	Program     string `json:"program"`
	SeatType    string `json:"seatType"`
	OpeningRank int    `json:"openingRank"`
	ClosingRank int    `json:"closingRank"`
	Year        int    `json:"year"`
	Round       int    `json:"round"`
	SourceFile  string `json:"sourceFile"`
}

// RatingRecord is one row of the value-for-money sheet. Read-only reference
// data for the lifetime of a training run.
type RatingRecord struct {
	Institute string  `json:"institute"`
	Course    string  `json:"course"`
	Rating    float64 `json:"rating"`
}
