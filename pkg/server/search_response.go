package server

import (
	"github.com/matst80/craft-finder/pkg/types"
)

type ProjectsResponse struct {
	Items   []types.Project     `json:"items"`
	Total   int                 `json:"total"`
	Query   string              `json:"query"`
	Active  []types.ActiveGroup `json:"active"`
	Version string              `json:"version"`
}

// OptionGroup is one sidebar section. Counts, when present, are the number
// of projects in the current result carrying each value.
type OptionGroup struct {
	Category types.Category `json:"category"`
	Label    string         `json:"label"`
	Values   []string       `json:"values"`
	Counts   map[string]int `json:"counts,omitempty"`
}

type OptionsResponse struct {
	Options types.FilterOptions `json:"options"`
	Groups  []OptionGroup       `json:"groups"`
	Version string              `json:"version"`
}

type SearchResponse struct {
	ProjectsResponse
	Groups []OptionGroup `json:"groups"`
}

func optionGroups(options *types.FilterOptions, counts map[types.Category]map[string]int) []OptionGroup {
	ret := make([]OptionGroup, 0, len(types.Categories))
	for _, c := range types.Categories {
		group := OptionGroup{
			Category: c,
			Label:    c.Label(),
			Values:   options.Get(c),
		}
		if counts != nil {
			group.Counts = counts[c]
			if group.Counts == nil {
				group.Counts = map[string]int{}
			}
		}
		ret = append(ret, group)
	}
	return ret
}
