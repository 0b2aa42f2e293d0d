// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rowparse

import (
	"reflect"
	"testing"
)

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   []string
		wantOK bool
	}{
		{
			name:   "plain comma row",
			line:   "Acme GmbH,Pet Food,Germany,uses pea protein,acme.de,A",
			want:   []string{"Acme GmbH", "Pet Food", "Germany", "uses pea protein", "acme.de", "A"},
			wantOK: true,
		},
		{
			name:   "quoted comma is not a split point",
			line:   `"Foo, Bar & Co",Snacks,Austria,"protein bars, cereals",foobar.at,B`,
			want:   []string{"Foo, Bar & Co", "Snacks", "Austria", "protein bars, cereals", "foobar.at", "B"},
			wantOK: true,
		},
		{
			name:   "semicolon fallback",
			line:   "Acme GmbH;Pet Food;Germany;uses pea protein;acme.de;A",
			want:   []string{"Acme GmbH", "Pet Food", "Germany", "uses pea protein", "acme.de", "A"},
			wantOK: true,
		},
		{
			name:   "whitespace trimmed around fields",
			line:   "  Acme GmbH , Pet Food ,  Germany ,why, , C ",
			want:   []string{"Acme GmbH", "Pet Food", "Germany", "why", "", "C"},
			wantOK: true,
		},
		{
			name:   "too few fields under both delimiters",
			line:   "Acme GmbH,Pet Food,Germany",
			wantOK: false,
		},
		{
			name:   "prose line rejected",
			line:   "Here are the companies you asked for:",
			wantOK: false,
		},
		{
			name: "unquoted comma shifts boundaries",
			// Seven fields: positional mapping keeps the first six, so the
			// website lands in the justification slot.
			line:   "Acme GmbH,Pet Food,Germany,premium,dog food,acme.de,A",
			want:   []string{"Acme GmbH", "Pet Food", "Germany", "premium", "dog food", "acme.de"},
			wantOK: true,
		},
		{
			name:   "empty trailing fields kept",
			line:   "Acme GmbH,Pet Food,Germany,why,,",
			want:   []string{"Acme GmbH", "Pet Food", "Germany", "why", "", ""},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, ok := SplitRow(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("SplitRow(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			got := fields[:FieldCount]
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitRow(%q)\n got  %q\n want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseBlock(t *testing.T) {
	text := "Acme GmbH,Pet Food,Germany,uses pea protein,acme.de,A\n" +
		"\n" +
		"not a csv line\n" +
		"Beta AG;Snacks;Austria;protein cereals;;B\n" +
		"   \n" +
		`"Gamma, Inc",Dairy Alternatives,USA,"oat milk, yogurt",gamma.com,C` + "\n"

	rows := ParseBlock(text)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3: %+v", len(rows), rows)
	}

	if rows[0].Company != "Acme GmbH" || rows[0].Priority != "A" {
		t.Errorf("row[0] = %+v", rows[0])
	}
	if rows[1].Company != "Beta AG" || rows[1].Website != "" || rows[1].Priority != "B" {
		t.Errorf("row[1] = %+v", rows[1])
	}
	if rows[2].Company != "Gamma, Inc" || rows[2].WhyRelevant != "oat milk, yogurt" {
		t.Errorf("row[2] = %+v", rows[2])
	}
}

func TestParseBlockEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "   \n\t\n"} {
		if rows := ParseBlock(text); len(rows) != 0 {
			t.Errorf("ParseBlock(%q) = %d rows, want 0", text, len(rows))
		}
	}
}

func TestSplitRowExtraFieldsPositionalMapping(t *testing.T) {
	// The parser takes whatever the split produced; extra delimiters are not
	// an error, the record just absorbs the first six fields.
	rows := ParseBlock("A Corp,Seg,DE,why,site.example,A,extra,more")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Priority != "A" {
		t.Errorf("Priority = %q, want %q", rows[0].Priority, "A")
	}
}
