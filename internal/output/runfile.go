// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/prospect-engine/internal/collect"
	"github.com/pdiddy/prospect-engine/pkg/types"
)

// RunFile is the on-disk record of one collection run: the parameters it
// ran with, what happened, and the records it produced. Kept next to the
// CSV so a campaign can be audited or resumed later.
type RunFile struct {
	Params    RunParams        `yaml:"params"`
	Summary   RunSummary       `yaml:"summary"`
	Prospects []types.Prospect `yaml:"prospects"`
}

// RunParams stores the collection parameters in a serializable form.
type RunParams struct {
	Model        string   `yaml:"model"`
	TargetCount  int      `yaml:"target_count"`
	BatchSize    int      `yaml:"batch_size"`
	MaxCalls     int      `yaml:"max_calls"`
	AvoidWindow  int      `yaml:"avoid_window"`
	SegmentsUsed []string `yaml:"segments_used"`
}

// RunSummary stores run statistics and a timestamp.
type RunSummary struct {
	Calls            int       `yaml:"calls"`
	Collected        int       `yaml:"collected"`
	EmptyBatches     int       `yaml:"empty_batches"`
	ExhaustedBatches int       `yaml:"exhausted_batches"`
	Timestamp        time.Time `yaml:"timestamp"`
}

// Write writes the collection results per cfg: the CSV always, the run
// record only when cfg.RunFile is set.
func Write(cfg types.OutputConfig, params RunParams, summary collect.Summary, prospects []types.Prospect) error {
	csvPath := cfg.CSVPath
	if csvPath == "" {
		csvPath = "prospects.csv"
	}
	if err := WriteCSVFile(csvPath, prospects); err != nil {
		return err
	}
	if cfg.RunFile == "" {
		return nil
	}
	return WriteRunFile(cfg.RunFile, params, summary, prospects)
}

// WriteRunFile saves the run record to a YAML file.
func WriteRunFile(path string, params RunParams, summary collect.Summary, prospects []types.Prospect) error {
	rf := RunFile{
		Params: params,
		Summary: RunSummary{
			Calls:            summary.Calls,
			Collected:        summary.Collected,
			EmptyBatches:     summary.EmptyBatches,
			ExhaustedBatches: summary.ExhaustedBatches,
			Timestamp:        time.Now(),
		},
		Prospects: prospects,
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run record.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}
