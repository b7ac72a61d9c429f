package score

import (
	"fmt"
	"regexp"
	"sort"

	dErrors "medcalc/pkg/domain-errors"
)

// Score ids are stable lowercase underscore-separated strings.
var idPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// Registry is the authoritative id-to-definition mapping. It is built exactly
// once at startup from the static definition list and never mutated
// afterwards, which is what makes unbounded concurrent lookups safe without
// locking.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry builds the registry, rejecting malformed or duplicate
// registrations. A returned error is a configuration mistake and fatal at
// startup, never a runtime condition.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if !idPattern.MatchString(def.ID) {
			return nil, fmt.Errorf("score id %q is not lowercase underscore-separated", def.ID)
		}
		if def.Compute == nil {
			return nil, fmt.Errorf("score %q has no compute function", def.ID)
		}
		if def.Title == "" || def.Category == "" {
			return nil, fmt.Errorf("score %q is missing catalog metadata", def.ID)
		}
		for _, sp := range def.Params {
			if err := sp.validate(); err != nil {
				return nil, fmt.Errorf("score %q: %w", def.ID, err)
			}
		}
		if _, exists := r.defs[def.ID]; exists {
			return nil, fmt.Errorf("duplicate score id %q", def.ID)
		}
		r.defs[def.ID] = def
	}
	return r, nil
}

// Lookup resolves a score id to its definition.
func (r *Registry) Lookup(id string) (Definition, error) {
	def, ok := r.defs[id]
	if !ok {
		return Definition{}, dErrors.Newf(dErrors.CodeNotFound, "score %q is not registered", id).
			WithDetails(map[string]any{"score_id": id})
	}
	return def, nil
}

// Len returns the number of registered scores.
func (r *Registry) Len() int { return len(r.defs) }

// IDs returns all registered score ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Definitions returns all registered definitions sorted by id.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.defs))
	for _, id := range r.IDs() {
		defs = append(defs, r.defs[id])
	}
	return defs
}
