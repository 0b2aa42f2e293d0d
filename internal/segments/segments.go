// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segments provides the seed segment list the collection loop
// rotates through. The built-in list targets buyers and users of pea protein
// for an ingredients and packaging supplier; a YAML segments file can
// replace it for other campaigns.
package segments

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/prospect-engine/pkg/types"
)

// defaults is the built-in seed list. Read-only; Defaults returns a copy.
var defaults = []types.SeedSegment{
	{
		Title:       "Hersteller pflanzlicher Fleischalternativen",
		Description: "Burger, Nuggets, Würstchen, Hack, Schnitzel; etablierte Marken & Private Label",
	},
	{
		Title:       "Protein- & Functional-Food-Hersteller",
		Description: "Sportnahrung, Shakes, Riegel, Complete Meals, RTD-Proteindrinks",
	},
	{
		Title:       "Hersteller von Molkereialternativen",
		Description: "Milchalternativen, Joghurts, Käsealternativen, Eis",
	},
	{
		Title:       "Hersteller von Snacks und Backwaren",
		Description: "Chips, Kekse, Riegel, Müsli/Cereals, Backwaren mit Protein",
	},
	{
		Title:       "Tiernahrungshersteller (Pet Food)",
		Description: "Hunde-/Katzenfutter, Premium & Spezialfutter",
	},
	{
		Title:       "Lohnhersteller & Co-Packer Food/Drinks",
		Description: "Produzieren im Auftrag – gut für schnelle Skalierung",
	},
	{
		Title:       "Hersteller von Fertiggerichten & Convenience",
		Description: "Bowls, Suppen, Saucen, Tiefkühlkost",
	},
	{
		Title:       "B2B-Zutatenhändler / Distributoren",
		Description: "Multiplikatoren für Markteintritt; EU-weit und global",
	},
	{
		Title:       "Hersteller medizinischer / seniorengerechter Ernährung",
		Description: "Klinik-/Seniorenernährung, proteinangereichert",
	},
	{
		Title:       "Marken mit Verpackungsbedarf (Cross-Sell Packaging)",
		Description: "Lebensmittel-/Getränkemarken, die auch Zutaten einsetzen könnten",
	},
}

// Defaults returns the built-in seed segment list.
func Defaults() []types.SeedSegment {
	out := make([]types.SeedSegment, len(defaults))
	copy(out, defaults)
	return out
}

// File is the on-disk representation of a custom segment list.
type File struct {
	Segments []types.SeedSegment `yaml:"segments"`
}

// LoadFile reads a YAML segments file and validates it: the list must be
// non-empty and every segment needs a title.
func LoadFile(path string) ([]types.SeedSegment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading segments file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing segments file: %w", err)
	}
	if len(f.Segments) == 0 {
		return nil, fmt.Errorf("segments file %s contains no segments", path)
	}
	for i, s := range f.Segments {
		if s.Title == "" {
			return nil, fmt.Errorf("segments file %s: segment %d has no title", path, i)
		}
	}
	return f.Segments, nil
}

// WriteFile saves a segment list as YAML, e.g. to seed a custom campaign
// file from the defaults.
func WriteFile(path string, segs []types.SeedSegment) error {
	data, err := yaml.Marshal(File{Segments: segs})
	if err != nil {
		return fmt.Errorf("marshaling segments: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
