// Package cli implements the medcalcctl commands. The CLI runs against the
// in-process registry, no HTTP server involved, so it works offline and in
// scripts.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"medcalc/internal/score"
	"medcalc/internal/score/calculators"
)

// NewRootCmd creates the root Cobra command for the medcalcctl CLI.
func NewRootCmd(version string) (*cobra.Command, error) {
	registry, err := score.NewRegistry(calculators.All()...)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	svc, err := score.NewService(registry)
	if err != nil {
		return nil, fmt.Errorf("build service: %w", err)
	}

	cmd := &cobra.Command{
		Use:           "medcalcctl",
		Short:         "Clinical score calculator",
		Long:          "medcalcctl lists, describes, and evaluates the registered clinical scores.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newListCmd(registry),
		newDescribeCmd(registry),
		newCalcCmd(svc),
	)
	return cmd, nil
}

// printJSON renders v as indented JSON on the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
