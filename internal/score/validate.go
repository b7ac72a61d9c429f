package score

import (
	"fmt"
	"strings"

	dErrors "medcalc/pkg/domain-errors"
)

// Validate checks a caller-supplied parameter mapping against a descriptor's
// constraint specs and returns the canonical Params a compute function may
// trust. All violations for a call are collected and reported together in a
// single validation error; fields not declared in the specs are ignored.
func Validate(specs []ParamSpec, raw map[string]any) (Params, error) {
	out := make(Params, len(specs))
	var fields []string
	var reasons []string

	for _, sp := range specs {
		v, present := raw[sp.Name]
		if !present || v == nil {
			if sp.Default != nil {
				out[sp.Name] = sp.normalize(sp.Default)
				continue
			}
			if sp.Required {
				fields = append(fields, sp.Name)
				reasons = append(reasons, fmt.Sprintf("%s: missing required parameter", sp.Name))
			}
			continue
		}
		if reason := sp.check(v); reason != "" {
			fields = append(fields, sp.Name)
			reasons = append(reasons, fmt.Sprintf("%s: %s", sp.Name, reason))
			continue
		}
		out[sp.Name] = sp.normalize(v)
	}

	if len(fields) > 0 {
		return nil, dErrors.New(dErrors.CodeValidation, strings.Join(reasons, "; ")).
			WithDetails(map[string]any{"fields": fields})
	}
	return out, nil
}
