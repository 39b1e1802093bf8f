package facet

import (
	"github.com/matst80/craft-finder/pkg/types"
)

// Evaluator computes the visible subset of a project collection.
// LinearEvaluator scans, index.ProjectIndex answers from postings,
// both return the same projects in the same order.
type Evaluator interface {
	Filter(query string, selection *types.FilterSelection) []types.Project
}

type activeGate struct {
	field    ValueField
	selected *types.Selection
}

func activeGates(selection *types.FilterSelection) []activeGate {
	gates := make([]activeGate, 0, len(types.Categories))
	if selection == nil {
		return gates
	}
	for _, c := range types.Categories {
		s := selection.Get(c)
		if s.IsEmpty() {
			continue
		}
		if field, ok := Field(c); ok {
			gates = append(gates, activeGate{field: field, selected: s})
		}
	}
	return gates
}

// FilterProjects returns the projects matching query and selection in input order.
// Within a category selected values are alternatives, across categories every
// selection must match. Neither input is modified.
func FilterProjects(projects []types.Project, query string, selection *types.FilterSelection) []types.Project {
	matcher := NewQueryMatcher(query)
	gates := activeGates(selection)
	ret := make([]types.Project, 0, len(projects))

	for i := range projects {
		p := &projects[i]
		if !matcher.Match(p) {
			continue
		}
		matched := true
		for _, gate := range gates {
			if !gate.field.Match(p, gate.selected) {
				matched = false
				break
			}
		}
		if matched {
			ret = append(ret, *p)
		}
	}
	return ret
}

// LinearEvaluator evaluates by scanning the collection on every call.
type LinearEvaluator struct {
	Projects []types.Project
}

func (l LinearEvaluator) Filter(query string, selection *types.FilterSelection) []types.Project {
	return FilterProjects(l.Projects, query, selection)
}
