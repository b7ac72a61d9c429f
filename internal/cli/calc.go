package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"medcalc/internal/score"
)

func newCalcCmd(svc *score.Service) *cobra.Command {
	var (
		params  []string
		rawJSON string
	)

	cmd := &cobra.Command{
		Use:   "calc <score_id>",
		Short: "Evaluate a score",
		Example: `  # Individual parameters
  medcalcctl calc fisher_grading_scale -p ct_findings=localized_thick

  # Full JSON payload
  medcalcctl calc rox_index --json '{"spo2": 95, "fio2": 0.6, "respiratory_rate": 24}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := buildParams(params, rawJSON)
			if err != nil {
				return err
			}

			result, err := svc.Dispatch(cmd.Context(), args[0], raw)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Parameter as name=value (repeatable)")
	cmd.Flags().StringVar(&rawJSON, "json", "", "Full parameter mapping as a JSON object")
	return cmd
}

// buildParams assembles the raw parameter mapping from either the repeated
// -p flags or a single JSON object. The two forms are mutually exclusive.
func buildParams(params []string, rawJSON string) (map[string]any, error) {
	if rawJSON != "" {
		if len(params) > 0 {
			return nil, fmt.Errorf("use either --param or --json, not both")
		}
		var raw map[string]any
		if err := json.Unmarshal([]byte(rawJSON), &raw); err != nil {
			return nil, fmt.Errorf("parse --json payload: %w", err)
		}
		return raw, nil
	}

	raw := make(map[string]any, len(params))
	for _, kv := range params {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("parameter %q is not in name=value form", kv)
		}
		raw[name] = coerce(value)
	}
	return raw, nil
}

// coerce types a flag value the way JSON decoding would: numbers and booleans
// keep their type, everything else stays a string.
func coerce(value string) any {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
