package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"zoogen/pkg/core"
)

var valuesCmd = &cobra.Command{
	Use:   "values [field]",
	Short: "List the distinct values of a field",
	Long: `List the distinct values observed for a field across the dataset,
sorted and numbered. Useful for deciding on --filter constraints.
Fields: diet, type, skin_type, lifespan, location.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		field := args[0]

		gen, err := buildGenerator()
		if err != nil {
			fatal("Error initializing zoogen", err)
		}

		records, err := gen.Records(context.Background())
		if err != nil {
			fatal("Error loading dataset", err)
		}

		values := core.UniqueValues(records, field)
		if len(values) == 0 {
			fmt.Printf("no values found for field %q\n", field)
			return
		}
		for i, v := range values {
			fmt.Printf("%d. %s\n", i+1, v)
		}
	},
}

func init() {
	rootCmd.AddCommand(valuesCmd)
}
