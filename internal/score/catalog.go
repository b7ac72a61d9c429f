package score

import (
	"sort"
	"strings"
)

// Info is the catalog listing entry for one score.
type Info struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Version     string `json:"version,omitempty"`
}

// ParamDoc renders one constraint spec for the metadata endpoint.
type ParamDoc struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Required    bool     `json:"required"`
	Allowed     []string `json:"allowed_values,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Default     any      `json:"default,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Metadata is the full catalog record for one score.
type Metadata struct {
	Info
	Params  []ParamDoc     `json:"parameters"`
	Example map[string]any `json:"example,omitempty"`
}

// List returns catalog entries, optionally filtered by category and by a
// case-insensitive search over id, title, and description. Results are sorted
// by id.
func (r *Registry) List(category, search string) []Info {
	search = strings.ToLower(search)
	infos := make([]Info, 0, len(r.defs))
	for _, def := range r.Definitions() {
		if category != "" && !strings.EqualFold(def.Category, category) {
			continue
		}
		if search != "" && !matches(def, search) {
			continue
		}
		infos = append(infos, info(def))
	}
	return infos
}

// Categories returns the sorted set of categories with at least one score.
func (r *Registry) Categories() []string {
	seen := make(map[string]struct{})
	for _, def := range r.defs {
		seen[def.Category] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Metadata returns the full catalog record for one score id.
func (r *Registry) Metadata(id string) (*Metadata, error) {
	def, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	md := &Metadata{
		Info:    info(def),
		Params:  make([]ParamDoc, 0, len(def.Params)),
		Example: def.Example,
	}
	for _, sp := range def.Params {
		md.Params = append(md.Params, ParamDoc{
			Name:        sp.Name,
			Kind:        sp.Kind,
			Required:    sp.Required,
			Allowed:     sp.Allowed,
			Min:         sp.Min,
			Max:         sp.Max,
			Default:     sp.Default,
			Unit:        sp.Unit,
			Description: sp.Description,
		})
	}
	return md, nil
}

func info(def Definition) Info {
	return Info{
		ID:          def.ID,
		Title:       def.Title,
		Description: def.Description,
		Category:    def.Category,
		Version:     def.Version,
	}
}

func matches(def Definition, search string) bool {
	return strings.Contains(strings.ToLower(def.ID), search) ||
		strings.Contains(strings.ToLower(def.Title), search) ||
		strings.Contains(strings.ToLower(def.Description), search)
}
