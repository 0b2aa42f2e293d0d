// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes collected prospects to their final destinations:
// the six-column CSV table and an optional YAML run file.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/prospect-engine/pkg/types"
)

// csvHeader is the fixed output header. Column names match the downstream
// CRM import, so they stay exactly as they are.
var csvHeader = []string{"Company", "Segment", "Country/Region", "WhyRelevant", "Website", "Priority"}

// WriteCSV writes prospects as a CSV table with the fixed header, one row
// per record.
func WriteCSV(w io.Writer, prospects []types.Prospect) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range prospects {
		row := []string{p.Name, p.Segment, p.Region, p.Justification, p.Website, string(p.Priority)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %q: %w", p.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV table to path.
func WriteCSVFile(path string, prospects []types.Prospect) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, prospects); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteYAML writes prospects as a YAML list (used by store export).
func WriteYAML(w io.Writer, prospects []types.Prospect) error {
	data, err := yaml.Marshal(prospects)
	if err != nil {
		return fmt.Errorf("marshaling prospects: %w", err)
	}
	_, err = w.Write(data)
	return err
}
