package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "housekeeping-plan",
		Short: "Offline daily inspection priority planner",
		Long:  "housekeeping-plan - computes an inspector's ranked room queue and briefing from a YAML snapshot.",
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output the plan as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(planCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
