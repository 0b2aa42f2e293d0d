// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screen validates parsed prospect candidates and enforces global
// name uniqueness across a collection run.
package screen

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/prospect-engine/internal/rowparse"
	"github.com/pdiddy/prospect-engine/pkg/types"
)

// nonCompanyPatterns match name-field content that is clearly not a real
// company: placeholder phrases ("siehe oben", "N/A", "keine Angabe",
// "unbekannt", sample rows) and websites that slipped into the name column.
var nonCompanyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^siehe`),
	regexp.MustCompile(`(?i)^n/a$`),
	regexp.MustCompile(`(?i)^keine`),
	regexp.MustCompile(`(?i)^unbekannt`),
	regexp.MustCompile(`(?i)^sample`),
	regexp.MustCompile(`(?i)http`),
	regexp.MustCompile(`(?i)\.com\b`),
	regexp.MustCompile(`(?i)\.de\b`),
}

// NormalizeKey produces the dedup key for a company name: trimmed,
// lowercased, with internal whitespace runs collapsed to single spaces.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// LooksLikeCompany reports whether name plausibly identifies a real company.
// Single alphabetic tokens of three or fewer letters are rejected as too
// generic (usually an acronym fragment from a misparsed row).
func LooksLikeCompany(name string) bool {
	for _, p := range nonCompanyPatterns {
		if p.MatchString(name) {
			return false
		}
	}
	if tokens := strings.Fields(name); len(tokens) == 1 &&
		isAlphabetic(tokens[0]) && utf8.RuneCountInString(tokens[0]) <= 3 {
		return false
	}
	return true
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// SeenSet tracks the normalized keys of every accepted prospect. It only
// ever grows.
type SeenSet map[string]struct{}

// NewSeenSet builds a SeenSet pre-seeded with the given keys (already
// normalized, e.g. loaded from the ledger).
func NewSeenSet(keys ...string) SeenSet {
	s := make(SeenSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether key has been accepted before.
func (s SeenSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add records key as accepted.
func (s SeenSet) Add(key string) {
	s[key] = struct{}{}
}

// Apply screens a parsed batch against seen, returning the accepted records
// in input order. The seen set is updated per candidate, so when a batch
// contains the same name twice only the first occurrence survives.
func Apply(batch []rowparse.Row, seen SeenSet) []types.Prospect {
	var clean []types.Prospect
	for _, row := range batch {
		key := NormalizeKey(row.Company)
		if key == "" || seen.Has(key) {
			continue
		}
		if !LooksLikeCompany(row.Company) {
			continue
		}
		seen.Add(key)
		clean = append(clean, types.Prospect{
			Name:          row.Company,
			Segment:       row.Segment,
			Region:        row.Region,
			Justification: row.WhyRelevant,
			Website:       row.Website,
			Priority:      types.PriorityTier(row.Priority),
		})
	}
	return clean
}
