package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	adapterfs "zoogen/pkg/adapters/fs"
	"zoogen/pkg/zoogen"
)

var watchFilterArgs []string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the page whenever the dataset or template changes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := zoogen.LoadConfig(basePath)
		if err != nil {
			fatal("Error loading configuration", err)
		}

		gen := zoogen.New(cfg, zoogen.WithLogger(slog.Default()))

		filters, err := parseFilters(watchFilterArgs)
		if err != nil {
			fatal("Error parsing filters", err)
		}

		regenerate := func(ctx context.Context) error {
			res := gen.Run(ctx, filters)
			fmt.Println(res.Message)
			if !res.OK {
				return errors.New(res.Message)
			}
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Initial render; a failure here is reported but keeps the watch
		// alive so fixing the input triggers a retry.
		if err := regenerate(ctx); err != nil {
			slog.Default().Warn("initial generation failed, watching for fixes", "error", err)
		}

		watcher := adapterfs.NewWatcher(
			[]string{cfg.Data(), cfg.Template()},
			regenerate,
			slog.Default(),
		)
		slog.Default().Info("watching for changes", "data", cfg.Data(), "template", cfg.Template())

		if err := watcher.Run(ctx); err != nil {
			fatal("Watch failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringArrayVar(&watchFilterArgs, "filter", nil, "Filter constraint as field=value (repeatable)")
}
