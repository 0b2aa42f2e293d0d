// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prospect-engine/internal/collect"
	"github.com/pdiddy/prospect-engine/internal/output"
	"github.com/pdiddy/prospect-engine/internal/screen"
	"github.com/pdiddy/prospect-engine/internal/secrets"
	"github.com/pdiddy/prospect-engine/internal/segments"
	"github.com/pdiddy/prospect-engine/internal/store"
	"github.com/pdiddy/prospect-engine/pkg/types"
)

const defaultModel = "claude-sonnet-4-5-20250929"

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect prospects until the target count or call cap is reached",
	Long: `Collect runs the generation loop: it cycles through the seed segments,
requests one batch of companies per call, screens out duplicates and
non-companies, and stops at the target count or the call cap, whichever
comes first. The result is written as a six-column CSV.

With the ledger enabled (the default), previously collected companies are
excluded up front and new acceptances are appended to the ledger.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().Int("target", 0, fmt.Sprintf("number of prospects to collect (default %d)", types.DefaultTargetCount))
	collectCmd.Flags().Int("batch-size", 0, fmt.Sprintf("companies requested per call (default %d)", types.DefaultBatchSize))
	collectCmd.Flags().Int("max-calls", 0, fmt.Sprintf("safety cap on generation calls (default %d)", types.DefaultMaxCalls))
	collectCmd.Flags().Int("avoid-window", 0, fmt.Sprintf("avoid-list window of recent names (default %d)", types.DefaultAvoidWindow))
	collectCmd.Flags().Duration("pace", 0, "pause after a productive batch (default 800ms)")
	collectCmd.Flags().Duration("retry-pause", 0, "pause after an empty batch (default 2s)")
	collectCmd.Flags().String("model", "", "AI model identifier for generation")
	collectCmd.Flags().String("api-key", "", "generation API key (default: .secrets/anthropic-api-key)")
	collectCmd.Flags().String("segments", "", "YAML file replacing the built-in segment list")
	collectCmd.Flags().String("output", "prospects.csv", "destination CSV file")
	collectCmd.Flags().String("run-file", "", "optional YAML run record (parameters, summary, records)")
	collectCmd.Flags().String("store-dir", "store", "directory for the prospect ledger")
	collectCmd.Flags().Bool("no-store", false, "disable the prospect ledger for this run")

	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg := collectionConfig(cmd)

	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("model")
	}
	if model == "" {
		model = defaultModel
	}

	keyOverride, _ := cmd.Flags().GetString("api-key")
	apiKey := secrets.Resolve(loadedSecrets, secrets.AnthropicAPIKey, keyOverride)
	if apiKey == "" {
		apiKey = viper.GetString("api_key")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: provide --api-key, .secrets/%s, or PROSPECT_ENGINE_API_KEY", secrets.AnthropicAPIKey)
	}

	segs, err := activeSegments(cmd)
	if err != nil {
		return err
	}

	seen := screen.NewSeenSet()
	var ledger *store.Store
	noStore, _ := cmd.Flags().GetBool("no-store")
	if !noStore {
		storeDir, _ := cmd.Flags().GetString("store-dir")
		ledger, err = store.Open(types.StoreConfig{Dir: storeDir})
		if err != nil {
			return err
		}
		defer ledger.Close()

		keys, err := ledger.Keys(cmd.Context())
		if err != nil {
			return err
		}
		seen = screen.NewSeenSet(keys...)
		if len(keys) > 0 {
			fmt.Printf("ledger holds %d known companies; they will be skipped\n", len(keys))
		}
	}

	backend := collect.NewClaudeBackend(types.AIConfig{
		APIKey:     apiKey,
		Model:      model,
		SystemRole: viper.GetString("system_role"),
		MaxRetries: viper.GetInt("max_retries"),
	})
	backend.Notices = os.Stderr

	results, summary, err := collect.Run(context.Background(), backend, segs, cfg, seen, os.Stdout)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	runFile, _ := cmd.Flags().GetString("run-file")
	eff := cfg.WithDefaults()
	params := output.RunParams{
		Model:        model,
		TargetCount:  eff.TargetCount,
		BatchSize:    eff.BatchSize,
		MaxCalls:     eff.MaxCalls,
		AvoidWindow:  eff.AvoidWindow,
		SegmentsUsed: segmentTitles(segs),
	}
	outCfg := types.OutputConfig{CSVPath: outPath, RunFile: runFile}
	if err := output.Write(outCfg, params, summary, results); err != nil {
		return err
	}

	if ledger != nil {
		if _, err := ledger.Append(cmd.Context(), results); err != nil {
			return fmt.Errorf("updating ledger: %w", err)
		}
	}

	fmt.Printf("\nSaved %d prospects to %s (%d calls", len(results), outPath, summary.Calls)
	if summary.EmptyBatches > 0 {
		fmt.Printf(", %d empty batches", summary.EmptyBatches)
	}
	fmt.Println(")")
	return nil
}

// collectionConfig merges flags over viper config values; zero values fall
// through to the package defaults inside the loop.
func collectionConfig(cmd *cobra.Command) types.CollectionConfig {
	cfg := types.CollectionConfig{
		TargetCount:  viper.GetInt("collection.target_count"),
		BatchSize:    viper.GetInt("collection.batch_size"),
		MaxCalls:     viper.GetInt("collection.max_calls"),
		AvoidWindow:  viper.GetInt("collection.avoid_window"),
		PaceDelay:    viper.GetDuration("collection.pace_delay"),
		RetryDelay:   viper.GetDuration("collection.retry_delay"),
		AvoidTextCap: viper.GetInt("collection.avoid_text_cap"),
	}

	if v, _ := cmd.Flags().GetInt("target"); v > 0 {
		cfg.TargetCount = v
	}
	if v, _ := cmd.Flags().GetInt("batch-size"); v > 0 {
		cfg.BatchSize = v
	}
	if v, _ := cmd.Flags().GetInt("max-calls"); v > 0 {
		cfg.MaxCalls = v
	}
	if v, _ := cmd.Flags().GetInt("avoid-window"); v > 0 {
		cfg.AvoidWindow = v
	}
	if v, _ := cmd.Flags().GetDuration("pace"); v > 0 {
		cfg.PaceDelay = v
	}
	if v, _ := cmd.Flags().GetDuration("retry-pause"); v > 0 {
		cfg.RetryDelay = v
	}
	return cfg
}

// activeSegments returns the segment list for this invocation: the
// --segments file when given, the built-in list otherwise.
func activeSegments(cmd *cobra.Command) ([]types.SeedSegment, error) {
	path, _ := cmd.Flags().GetString("segments")
	if path == "" {
		path = viper.GetString("segments_file")
	}
	if path == "" {
		return segments.Defaults(), nil
	}
	return segments.LoadFile(path)
}

func segmentTitles(segs []types.SeedSegment) []string {
	titles := make([]string, len(segs))
	for i, s := range segs {
		titles[i] = s.Title
	}
	return titles
}
