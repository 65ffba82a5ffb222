package main

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"closing_table/internal/application"
	"closing_table/internal/config"
	"closing_table/internal/domain/service/mechanism"
)

type computeOutput struct {
	Status    string `json:"status"`
	Final     *int64 `json:"final,omitempty"`
	Suggested *int64 `json:"suggested,omitempty"`
}

// newComputeCommand runs the mechanism offline with the configured deal
// parameters, without touching any store.
func newComputeCommand() *cobra.Command {
	var ceiling, floor float64

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute an outcome for a ceiling and a floor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config.Load: %w", err)
			}

			outcome, err := mechanism.Compute(ceiling, floor, application.DealParams(cfg.Deal))
			if err != nil {
				return fmt.Errorf("mechanism.Compute: %w", err)
			}

			enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout())

			return enc.Encode(computeOutput{
				Status:    outcome.Status.String(),
				Final:     outcome.Final,
				Suggested: outcome.Suggested,
			})
		},
	}

	cmd.Flags().Float64Var(&ceiling, "ceiling", 0, "initiator's maximum")
	cmd.Flags().Float64Var(&floor, "floor", 0, "counterparty's minimum")
	_ = cmd.MarkFlagRequired("ceiling")
	_ = cmd.MarkFlagRequired("floor")

	return cmd
}
