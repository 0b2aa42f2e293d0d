// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the prospect-engine
// pipeline: prospect records, seed segments, and stage configuration.
package types

// PriorityTier is the coarse relevance rating the generation service assigns
// to each candidate: A (very likely buyer), B (plausible), C (possible).
type PriorityTier string

const (
	PriorityA PriorityTier = "A"
	PriorityB PriorityTier = "B"
	PriorityC PriorityTier = "C"
)

// Prospect is one accepted candidate company. Records are immutable once
// they pass screening; only the final trim removes them.
type Prospect struct {
	// Name is the company name as returned by the generation service.
	Name string `json:"name" yaml:"name"`

	// Segment is the seed segment the record was generated under.
	Segment string `json:"segment" yaml:"segment"`

	// Region is the country or region (EU/DACH/UK preferred, otherwise named).
	Region string `json:"region" yaml:"region"`

	// Justification is a one-line relevance rationale.
	Justification string `json:"justification" yaml:"justification"`

	// Website is the company website if known, otherwise empty.
	Website string `json:"website,omitempty" yaml:"website,omitempty"`

	// Priority is the A/B/C relevance tier.
	Priority PriorityTier `json:"priority" yaml:"priority"`
}

// SeedSegment is a named category of target companies used to diversify
// generation prompts. The active list is fixed for the duration of a run.
type SeedSegment struct {
	// Title is the short segment name (e.g. "Tiernahrungshersteller (Pet Food)").
	Title string `json:"title" yaml:"title"`

	// Description expands the title with example product categories.
	Description string `json:"description" yaml:"description"`
}
