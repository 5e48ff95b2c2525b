package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zoogen/internal/menu"
	"zoogen/pkg/core"
	"zoogen/pkg/zoogen"
)

var (
	dataPath     string
	templatePath string
	outputPath   string
	filterArgs   []string
	interactive  bool
	verbatim     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the animals page",
	Long: `Render the HTML page from the dataset, optionally narrowed by filters.
Filters are given as repeated --filter field=value flags (value "all" is a
no-op), or picked interactively with --interactive.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		gen, err := buildGenerator()
		if err != nil {
			fatal("Error initializing zoogen", err)
		}

		filters, err := parseFilters(filterArgs)
		if err != nil {
			fatal("Error parsing filters", err)
		}

		if interactive {
			records, err := gen.Records(ctx)
			if err != nil {
				fatal("Error loading dataset", err)
			}
			picked, err := menu.Run(records)
			if err != nil {
				fatal("Error selecting filters", err)
			}
			for _, c := range picked {
				filters = filters.Set(c.Field, c.Value)
			}
		}

		res := gen.Run(ctx, filters)
		fmt.Println(res.Message)
		if !res.OK {
			os.Exit(1)
		}
	},
}

// buildGenerator loads the layered configuration and applies flag overrides.
func buildGenerator() (*zoogen.Generator, error) {
	cfg, err := zoogen.LoadConfig(basePath)
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	if templatePath != "" {
		cfg.TemplatePath = templatePath
	}
	if outputPath != "" {
		cfg.OutputPath = outputPath
	}

	return zoogen.New(cfg,
		zoogen.WithLogger(slog.Default()),
		zoogen.WithVerbatimValues(verbatim),
	), nil
}

func parseFilters(args []string) (core.Filters, error) {
	var filters core.Filters
	for _, a := range args {
		field, value, ok := strings.Cut(a, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid filter %q, expected field=value", a)
		}
		filters = filters.Set(field, value)
	}
	return filters, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&dataPath, "data", "", "Dataset file (JSON or YAML)")
	generateCmd.Flags().StringVar(&templatePath, "template", "", "Page template file")
	generateCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output HTML file")
	generateCmd.Flags().StringArrayVar(&filterArgs, "filter", nil, "Filter constraint as field=value (repeatable)")
	generateCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick filters through an interactive menu")
	generateCmd.Flags().BoolVar(&verbatim, "verbatim", false, "Insert field values without HTML escaping")
}
