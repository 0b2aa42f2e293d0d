// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rowparse extracts delimited prospect rows from free-form generated
// text. The generation service is asked for headerless CSV, but in practice
// returns anything from clean CSV to semicolon-delimited or lightly decorated
// lines, so the tokenizer is deliberately forgiving: it tries comma first,
// falls back to semicolon, and silently drops lines that yield fewer than six
// fields under both delimiters. Parsing never fails.
package rowparse

import "strings"

// FieldCount is the number of fields a usable row must provide:
// Company, Segment, Country/Region, WhyRelevant, Website, Priority.
const FieldCount = 6

// Row is one raw parsed record. Fields map positionally from the split line
// and are not yet validated; screening happens downstream.
type Row struct {
	Company     string
	Segment     string
	Region      string
	WhyRelevant string
	Website     string
	Priority    string
}

// ParseBlock splits text into lines, skips blank lines, and tokenizes each
// remaining line into a Row. Malformed lines are dropped, never reported.
func ParseBlock(text string) []Row {
	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, ok := SplitRow(line)
		if !ok {
			continue
		}
		rows = append(rows, Row{
			Company:     fields[0],
			Segment:     fields[1],
			Region:      fields[2],
			WhyRelevant: fields[3],
			Website:     fields[4],
			Priority:    fields[5],
		})
	}
	return rows
}

// SplitRow tokenizes one line with the documented fallback order: comma
// first, then semicolon if the comma split produced fewer than FieldCount
// fields. It reports ok=false when both attempts come up short.
//
// A line that splits into more than FieldCount fields is still accepted;
// positional mapping takes the first six. Unquoted delimiters inside a field
// therefore shift field boundaries. Known limitation, kept as-is.
func SplitRow(line string) ([]string, bool) {
	fields := splitOutsideQuotes(line, ',')
	if len(fields) < FieldCount {
		fields = splitOutsideQuotes(line, ';')
	}
	if len(fields) < FieldCount {
		return nil, false
	}
	return fields, true
}

// splitOutsideQuotes splits line on delim, treating delimiters inside
// matching double quotes as literal. Each field is whitespace-trimmed and
// stripped of surrounding quotes.
func splitOutsideQuotes(line string, delim rune) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case r == delim && !inQuote:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cleanField(cur.String()))
	return fields
}

// cleanField trims whitespace, then surrounding double quotes, then any
// whitespace the quotes were protecting.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}
