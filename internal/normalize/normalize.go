// Package normalize canonicalizes free-text institution names so the same
// college spelled differently across datasets produces the same lookup key.
package normalize

import (
	"regexp"
	"strings"
)

// replacement is one literal substring rewrite. Replacements are applied in
// slice order; later rules see the text produced by earlier ones, so the
// order is part of the contract, not an implementation detail.
type replacement struct {
	old string
	new string
}

// collegeReplacements expands common abbreviations and collapses long forms
// to increase token overlap between the admission and rating datasets.
var collegeReplacements = []replacement{
	{"IIT", "INDIAN INSTITUTE OF TECHNOLOGY"},
	{"NIT", "NATIONAL INSTITUTE OF TECHNOLOGY"},
	{"IIIT", "INDIAN INSTITUTE OF INFORMATION TECHNOLOGY"},
	{"B.TECH", "BACHELOR OF TECHNOLOGY"},
	{"B.TECH.", "BACHELOR OF TECHNOLOGY"},
	{"ENGINEERING", "ENGG"},
	{"TECHNOLOGY", "TECH"},
	{"(", ""},
	{")", ""},
	{"&", "AND"},
}

var (
	nonAlnumRe   = regexp.MustCompile(`[^A-Z0-9\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CollegeName returns the canonical form of a raw institution name. It is
// pure and total: empty or unusable input maps to the empty string, never an
// error. The function is idempotent, so a canonical name passed back in is
// returned unchanged.
func CollegeName(raw string) string {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "" {
		return ""
	}

	for _, r := range collegeReplacements {
		name = strings.ReplaceAll(name, r.old, r.new)
	}

	name = nonAlnumRe.ReplaceAllString(name, " ")
	name = whitespaceRe.ReplaceAllString(name, " ")

	return strings.TrimSpace(name)
}
