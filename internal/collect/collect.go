// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect drives the prospect collection loop: it rotates through
// the seed segments, prompts the text-generation backend, parses and screens
// each batch, and accumulates unique prospects until the target count is
// reached or the call cap is exhausted.
//
// The loop has three effective states. RUNNING issues one blocking call per
// iteration. An empty batch (no parseable rows at all) moves it to a
// paused-retry state: warn, sleep the longer retry delay, go again. Reaching
// the target or the cap is DONE. A batch that parses but screens down to
// nothing is not a pause, only an informational note before the next
// iteration.
package collect

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/prospect-engine/internal/rowparse"
	"github.com/pdiddy/prospect-engine/internal/screen"
	"github.com/pdiddy/prospect-engine/pkg/types"
)

// TextBackend abstracts the text-generation service so the loop can run
// against deterministic stubs: given a prompt, return raw text or fail.
type TextBackend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summary holds counts from one collection run.
type Summary struct {
	// Calls is the number of generation calls issued.
	Calls int `json:"calls" yaml:"calls"`

	// Collected is the final (trimmed) number of prospects.
	Collected int `json:"collected" yaml:"collected"`

	// EmptyBatches counts calls that produced no parseable rows.
	EmptyBatches int `json:"empty_batches" yaml:"empty_batches"`

	// ExhaustedBatches counts calls whose rows were all duplicates or
	// invalid names.
	ExhaustedBatches int `json:"exhausted_batches" yaml:"exhausted_batches"`
}

// Run executes the collection loop and returns the accepted prospects in
// insertion order, trimmed to exactly cfg.TargetCount. All loop state
// (results, call counter, segment index) is local to this function; the
// caller owns the seen set so it can be pre-seeded from the ledger. A nil
// seen set starts empty.
//
// Backend errors are fatal and abort the run; an under-target result at the
// call cap is a normal outcome, not an error.
func Run(ctx context.Context, backend TextBackend, segs []types.SeedSegment, cfg types.CollectionConfig, seen screen.SeenSet, w io.Writer) ([]types.Prospect, Summary, error) {
	var summary Summary

	if len(segs) == 0 {
		return nil, summary, fmt.Errorf("no seed segments configured")
	}
	if seen == nil {
		seen = screen.NewSeenSet()
	}
	cfg = cfg.WithDefaults()

	var results []types.Prospect
	calls := 0
	segIdx := 0

	for len(results) < cfg.TargetCount && calls < cfg.MaxCalls {
		seg := segs[segIdx%len(segs)]
		segIdx++

		avoid := avoidWindow(results, cfg.AvoidWindow)
		prompt := BuildPrompt(seg, avoid, cfg.BatchSize, cfg.AvoidTextCap)

		text, err := backend.Generate(ctx, prompt)
		calls++
		if err != nil {
			summary.Calls = calls
			summary.Collected = len(results)
			return nil, summary, fmt.Errorf("generation call %d (segment %q): %w", calls, seg.Title, err)
		}

		batch := rowparse.ParseBlock(text)
		if len(batch) == 0 {
			// The segment index already advanced, so this retry moves on
			// to the next segment rather than re-attempting this one.
			fmt.Fprintf(w, "warning: empty batch on call %d, segment %q; retrying after pause\n", calls, seg.Title)
			summary.EmptyBatches++
			if err := pause(ctx, cfg.RetryDelay); err != nil {
				summary.Calls = calls
				summary.Collected = len(results)
				return nil, summary, err
			}
			continue
		}

		clean := screen.Apply(batch, seen)
		if len(clean) == 0 {
			fmt.Fprintf(w, "no new unique companies in batch %d\n", calls)
			summary.ExhaustedBatches++
			continue
		}

		results = append(results, clean...)
		fmt.Fprintf(w, "added %d (total %d), segment %q\n", len(clean), len(results), seg.Title)

		if err := pause(ctx, cfg.PaceDelay); err != nil {
			summary.Calls = calls
			summary.Collected = len(results)
			return nil, summary, err
		}
	}

	// Trim overshoot from the final batch.
	if len(results) > cfg.TargetCount {
		results = results[:cfg.TargetCount]
	}

	summary.Calls = calls
	summary.Collected = len(results)
	return results, summary, nil
}

// avoidWindow returns the names of the most recently collected n prospects,
// oldest first.
func avoidWindow(results []types.Prospect, n int) []string {
	start := 0
	if len(results) > n {
		start = len(results) - n
	}
	names := make([]string, 0, len(results)-start)
	for _, p := range results[start:] {
		names = append(names, p.Name)
	}
	return names
}

// pause sleeps for d, honoring context cancellation.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
