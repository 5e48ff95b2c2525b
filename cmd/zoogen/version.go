package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"zoogen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of zoogen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zoogen version %s\n", strings.TrimSpace(zoogen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
