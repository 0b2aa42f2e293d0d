// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/prospect-engine/internal/rowparse"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme GmbH", "acme gmbh"},
		{"  Acme   GmbH ", "acme gmbh"},
		{"ACME\tGMBH", "acme gmbh"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLooksLikeCompany(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Acme GmbH", true},
		{"Nestlé Deutschland", true},
		{"N/A", false},
		{"n/a", false},
		{"Keine Angabe", false},
		{"Siehe oben", false},
		{"unbekannt", false},
		{"Sample Company", false},
		{"sample-co.com", false},
		{"https://acme.example", false},
		{"acme.de", false},
		{"abc", false},       // single short alphabetic token
		{"Übé", false},       // rune count, not byte count
		{"abcd", true},       // four letters pass
		{"AB Foods", true},   // short token with a second word passes
		{"A1", true},         // digits disable the short-token rule
		{"", true},           // empty is caught by the key check, not here
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeCompany(tt.name); got != tt.want {
				t.Errorf("LooksLikeCompany(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestApplyRejectsSeenAfterNormalization(t *testing.T) {
	seen := NewSeenSet("acme gmbh")
	batch := []rowparse.Row{
		{Company: "  Acme   GmbH ", Segment: "Pet Food", Region: "DE", Priority: "A"},
	}
	clean := Apply(batch, seen)
	assert.Empty(t, clean, "whitespace/case variant of a seen name must be rejected")
}

func TestApplyFirstOccurrenceWins(t *testing.T) {
	seen := NewSeenSet()
	batch := []rowparse.Row{
		{Company: "Acme GmbH", Segment: "Pet Food", Region: "DE", Priority: "A"},
		{Company: "Acme GmbH", Segment: "Snacks", Region: "AT", Priority: "B"},
		{Company: "Beta AG", Segment: "Snacks", Region: "AT", Priority: "B"},
	}
	clean := Apply(batch, seen)
	require.Len(t, clean, 2)
	assert.Equal(t, "Acme GmbH", clean[0].Name)
	assert.Equal(t, "Pet Food", clean[0].Segment, "the first occurrence keeps its own fields")
	assert.Equal(t, "Beta AG", clean[1].Name)
	assert.Len(t, seen, 2, "seen set updated once per unique key")
}

func TestApplyPreservesInputOrder(t *testing.T) {
	seen := NewSeenSet()
	batch := []rowparse.Row{
		{Company: "Zeta GmbH", Priority: "C"},
		{Company: "Alpha AG", Priority: "A"},
		{Company: "Mitte KG", Priority: "B"},
	}
	clean := Apply(batch, seen)
	require.Len(t, clean, 3)
	assert.Equal(t, "Zeta GmbH", clean[0].Name)
	assert.Equal(t, "Alpha AG", clean[1].Name)
	assert.Equal(t, "Mitte KG", clean[2].Name)
}

func TestApplyRejectsEmptyAndNonCompanies(t *testing.T) {
	seen := NewSeenSet()
	batch := []rowparse.Row{
		{Company: ""},
		{Company: "   "},
		{Company: "N/A"},
		{Company: "sample-co.com"},
		{Company: "abc"},
		{Company: "Gamma SE", Segment: "Dairy Alternatives", Region: "SE", Priority: "A"},
	}
	clean := Apply(batch, seen)
	require.Len(t, clean, 1)
	assert.Equal(t, "Gamma SE", clean[0].Name)
	assert.Len(t, seen, 1)
}
