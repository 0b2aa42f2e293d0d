// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/prospect-engine/internal/segments"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Show or scaffold the seed segment list",
	Long: `Segments prints the seed segments a collection run would rotate
through: the --segments file when given, the built-in list otherwise.`,
	RunE: runSegments,
}

var segmentsInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write the built-in segment list to a YAML file for editing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "segments.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists; remove it first", path)
		}
		if err := segments.WriteFile(path, segments.Defaults()); err != nil {
			return err
		}
		fmt.Printf("Wrote %d segments to %s\n", len(segments.Defaults()), path)
		return nil
	},
}

func runSegments(cmd *cobra.Command, args []string) error {
	segs, err := activeSegments(cmd)
	if err != nil {
		return err
	}
	for i, s := range segs {
		fmt.Printf("%2d. %s\n", i+1, s.Title)
		if s.Description != "" {
			fmt.Printf("    %s\n", s.Description)
		}
	}
	return nil
}

func init() {
	segmentsCmd.Flags().String("segments", "", "YAML file replacing the built-in segment list")

	segmentsCmd.AddCommand(segmentsInitCmd)
	rootCmd.AddCommand(segmentsCmd)
}
