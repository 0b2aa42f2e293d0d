// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/prospect-engine/internal/collect"
	"github.com/pdiddy/prospect-engine/pkg/types"
)

func sampleProspects() []types.Prospect {
	return []types.Prospect{
		{Name: "Acme GmbH", Segment: "Pet Food", Region: "Germany", Justification: "pea protein kibble", Website: "acme.example", Priority: types.PriorityA},
		{Name: "Foo, Bar & Co", Segment: "Snacks", Region: "Austria", Justification: "bars, cereals", Priority: types.PriorityB},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleProspects()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Company", "Segment", "Country/Region", "WhyRelevant", "Website", "Priority"}, records[0])
	assert.Equal(t, []string{"Acme GmbH", "Pet Food", "Germany", "pea protein kibble", "acme.example", "A"}, records[1])
	// Names containing commas survive the round trip.
	assert.Equal(t, "Foo, Bar & Co", records[2][0])
	assert.Equal(t, "bars, cereals", records[2][3])
}

func TestWriteCSVEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "header only")
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospects.csv")
	require.NoError(t, WriteCSVFile(path, sampleProspects()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme GmbH")
}

func TestRunFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	params := RunParams{
		Model:        "test-model",
		TargetCount:  10,
		BatchSize:    5,
		MaxCalls:     40,
		AvoidWindow:  300,
		SegmentsUsed: []string{"Pet Food", "Snacks"},
	}
	summary := collect.Summary{Calls: 2, Collected: 2, EmptyBatches: 0, ExhaustedBatches: 1}

	require.NoError(t, WriteRunFile(path, params, summary, sampleProspects()))

	rf, err := ReadRunFile(path)
	require.NoError(t, err)
	assert.Equal(t, params, rf.Params)
	assert.Equal(t, 2, rf.Summary.Calls)
	assert.Equal(t, 1, rf.Summary.ExhaustedBatches)
	assert.False(t, rf.Summary.Timestamp.IsZero())
	require.Len(t, rf.Prospects, 2)
	assert.Equal(t, "Acme GmbH", rf.Prospects[0].Name)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleProspects()))
	assert.Contains(t, buf.String(), "name: Acme GmbH")
	assert.Contains(t, buf.String(), "priority: A")
}
