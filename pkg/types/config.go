// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIConfig holds shared settings for the text-generation backend.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// SystemRole is the role instruction sent with every generation call.
	// Empty selects the built-in lead-generation analyst role.
	SystemRole string `json:"system_role,omitempty" yaml:"system_role,omitempty"`

	// MaxRetries bounds retries on rate-limited API calls (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CollectionConfig holds settings for the collection loop.
type CollectionConfig struct {
	// TargetCount is the number of prospects to collect (default 1000).
	// The final result is trimmed to exactly this size.
	TargetCount int `json:"target_count" yaml:"target_count"`

	// BatchSize is the number of companies requested per generation call
	// (default 40).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// MaxCalls is the safety cap on generation calls (default 40). The loop
	// stops at the cap even if the target has not been reached.
	MaxCalls int `json:"max_calls" yaml:"max_calls"`

	// AvoidWindow bounds the avoid list to the most recently collected N
	// names (default 300) to control prompt growth.
	AvoidWindow int `json:"avoid_window" yaml:"avoid_window"`

	// AvoidTextCap truncates the serialized avoid list to this many bytes
	// (default 6000).
	AvoidTextCap int `json:"avoid_text_cap" yaml:"avoid_text_cap"`

	// PaceDelay is the pause after a productive batch (default 800ms).
	PaceDelay time.Duration `json:"pace_delay" yaml:"pace_delay"`

	// RetryDelay is the longer pause after an empty batch (default 2s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`
}

// Collection defaults, taken from the first production run of this tool.
const (
	DefaultTargetCount  = 1000
	DefaultBatchSize    = 40
	DefaultMaxCalls     = 40
	DefaultAvoidWindow  = 300
	DefaultAvoidTextCap = 6000
)

// Default pacing values.
const (
	DefaultPaceDelay  = 800 * time.Millisecond
	DefaultRetryDelay = 2 * time.Second
)

// WithDefaults returns a copy of the config with zero fields replaced by the
// package defaults.
func (c CollectionConfig) WithDefaults() CollectionConfig {
	if c.TargetCount <= 0 {
		c.TargetCount = DefaultTargetCount
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.MaxCalls <= 0 {
		c.MaxCalls = DefaultMaxCalls
	}
	if c.AvoidWindow <= 0 {
		c.AvoidWindow = DefaultAvoidWindow
	}
	if c.AvoidTextCap <= 0 {
		c.AvoidTextCap = DefaultAvoidTextCap
	}
	if c.PaceDelay <= 0 {
		c.PaceDelay = DefaultPaceDelay
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	return c
}

// StoreConfig holds settings for the prospect ledger.
type StoreConfig struct {
	// Dir is the directory holding the SQLite ledger (default "store").
	Dir string `json:"dir" yaml:"dir"`
}

// OutputConfig holds settings for the output stage.
type OutputConfig struct {
	// CSVPath is the destination for the final prospect table
	// (default "prospects.csv").
	CSVPath string `json:"csv_path" yaml:"csv_path"`

	// RunFile, when set, records parameters, summary, and records of the
	// run as YAML.
	RunFile string `json:"run_file,omitempty" yaml:"run_file,omitempty"`
}
