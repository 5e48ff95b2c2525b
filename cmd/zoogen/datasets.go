package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	adapterfs "zoogen/pkg/adapters/fs"
)

var datasetsPattern string

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List dataset files under the base directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		paths, err := adapterfs.Discover(basePath, datasetsPattern)
		if err != nil {
			fatal("Error discovering datasets", err)
		}
		if len(paths) == 0 {
			fmt.Printf("no datasets matching %q under %s\n", datasetsPattern, basePath)
			return
		}
		for _, p := range paths {
			if rel, err := filepath.Rel(basePath, p); err == nil {
				p = rel
			}
			fmt.Println(p)
		}
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
	datasetsCmd.Flags().StringVar(&datasetsPattern, "pattern", "data/**/*.{json,yaml,yml}", "Glob pattern for dataset files")
}
