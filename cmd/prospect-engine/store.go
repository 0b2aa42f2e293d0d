// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/prospect-engine/internal/output"
	"github.com/pdiddy/prospect-engine/internal/store"
	"github.com/pdiddy/prospect-engine/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Inspect or export the prospect ledger",
	Long: `Store works with the SQLite ledger of every prospect accepted across
runs. Use stats for counts by segment and priority, or export to dump
the ledger as CSV or YAML.`,
}

var storeStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ledger totals broken down by segment and priority",
	RunE:  runStoreStats,
}

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the ledger to stdout as CSV or YAML",
	RunE:  runStoreExport,
}

func openLedger(cmd *cobra.Command) (*store.Store, error) {
	dir, _ := cmd.Flags().GetString("store-dir")
	return store.Open(types.StoreConfig{Dir: dir})
}

func runStoreStats(cmd *cobra.Command, args []string) error {
	ledger, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer ledger.Close()

	stats, err := ledger.Summarize(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Total prospects: %d\n", stats.Total)

	fmt.Println("\nBy segment:")
	for _, seg := range sortedKeys(stats.BySegment) {
		fmt.Printf("  %-50s %d\n", seg, stats.BySegment[seg])
	}

	fmt.Println("\nBy priority:")
	for _, p := range sortedKeys(stats.ByPriority) {
		fmt.Printf("  %-3s %d\n", p, stats.ByPriority[p])
	}
	return nil
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	ledger, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer ledger.Close()

	prospects, err := ledger.All(context.Background())
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "csv", "":
		return output.WriteCSV(os.Stdout, prospects)
	case "yaml":
		return output.WriteYAML(os.Stdout, prospects)
	default:
		return fmt.Errorf("unsupported format %q: use csv or yaml", format)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	storeCmd.PersistentFlags().String("store-dir", "store", "directory for the prospect ledger")
	storeExportCmd.Flags().String("format", "csv", "export format: csv or yaml")

	storeCmd.AddCommand(storeStatsCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
