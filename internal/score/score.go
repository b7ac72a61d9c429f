// Package score implements the calculator registry and dispatch core: an
// immutable id-to-calculator mapping built once at startup, generic parameter
// validation against declarative constraint specs, and a dispatcher that
// normalizes every calculator's output into one envelope and every failure
// into one of three error kinds.
package score

import (
	"fmt"
	"strings"

	dErrors "medcalc/pkg/domain-errors"
)

// ComputeFunc is one calculator unit: a pure function over validated
// parameters. Given identical Params it must return an identical Result; it
// must not read or write process-wide mutable state. Bad-input conditions the
// generic validator cannot express (cross-field rules) are signaled with a
// CodeValidation error; anything else it returns or panics with is classified
// as internal by the dispatcher.
type ComputeFunc func(p Params) (*Result, error)

// Definition describes one registered calculator: its stable identifier, the
// catalog metadata served to clients, its parameter constraints, and the
// compute function itself. Definitions are created once during process
// initialization and owned by the Registry afterwards.
type Definition struct {
	ID          string
	Title       string
	Description string
	Category    string
	Version     string
	Params      []ParamSpec
	// Example is a documented parameter mapping that must dispatch
	// successfully; the catalog serves it and the test suite exercises it.
	Example map[string]any
	Compute ComputeFunc
}

// Result is the envelope every successful dispatch returns. The five
// mandatory fields are guaranteed present by Normalize regardless of which
// calculator produced them; unit-specific additions ride along in Extra.
type Result struct {
	// Result is the calculated value: a number, a string label, or a
	// structured breakdown for multi-part outputs.
	Result           any            `json:"result"`
	Unit             string         `json:"unit"`
	Interpretation   string         `json:"interpretation"`
	Stage            string         `json:"stage"`
	StageDescription string         `json:"stage_description"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// Normalize confirms the envelope contract: a non-nil result value and all
// four mandatory string fields populated. A calculator that omits one has
// violated its output contract and the dispatch is failed as internal rather
// than passing a partial envelope through.
func Normalize(r *Result) error {
	if r == nil {
		return fmt.Errorf("calculator returned no result")
	}
	var missing []string
	if r.Result == nil {
		missing = append(missing, "result")
	}
	if r.Unit == "" {
		missing = append(missing, "unit")
	}
	if r.Interpretation == "" {
		missing = append(missing, "interpretation")
	}
	if r.Stage == "" {
		missing = append(missing, "stage")
	}
	if r.StageDescription == "" {
		missing = append(missing, "stage_description")
	}
	if len(missing) > 0 {
		return fmt.Errorf("calculator omitted mandatory fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// BadParam builds the validation error a compute function returns when a
// cross-field rule rejects otherwise well-typed input.
func BadParam(field, reason string) error {
	return dErrors.Newf(dErrors.CodeValidation, "%s: %s", field, reason).
		WithDetails(map[string]any{"fields": []string{field}})
}
