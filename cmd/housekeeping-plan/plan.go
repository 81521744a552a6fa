package main

import (
	"encoding/json"
	"fmt"

	"github.com/Optimus825482/minibartakip2cool-sub001/internal/common/logger"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/priority"
	"github.com/Optimus825482/minibartakip2cool-sub001/internal/snapshot"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// planCmd implements 'housekeeping-plan plan'.
func planCmd() *cobra.Command {
	var (
		file string
		now  string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the priority plan for a snapshot file",
		Example: `  housekeeping-plan plan --file snapshot.yaml
  housekeeping-plan plan --file snapshot.yaml --now 11:30 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.NewLogger(logLevel, "console", "housekeeping-plan")
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			f, err := snapshot.Load(file)
			if err != nil {
				return err
			}
			snap, opts, err := f.Build(now)
			if err != nil {
				return err
			}

			plan := priority.NewPlanner(log).BuildPlan(snap, opts)
			if plan.Success {
				plan.PlanID = uuid.NewString()
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			if !plan.Success {
				return fmt.Errorf("%s", plan.Error)
			}
			_, err = fmt.Fprint(out, renderPlan(plan))
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Snapshot YAML file")
	cmd.Flags().StringVar(&now, "now", "", "Override the snapshot clock (HH:MM or RFC3339)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
