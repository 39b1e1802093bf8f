package index

import (
	"github.com/matst80/craft-finder/pkg/facet"
	"github.com/matst80/craft-finder/pkg/types"
)

// ProjectIndex answers filter queries from precomputed postings. It returns
// exactly what facet.FilterProjects returns for the same collection.
// The index is read only after construction and safe for concurrent use.
type ProjectIndex struct {
	projects []types.Project
	fields   map[types.Category]*KeyField
	// case folded SearchableText per project
	folded [][]string
	all    types.ItemList
}

func NewProjectIndex(projects []types.Project) *ProjectIndex {
	idx := &ProjectIndex{
		projects: projects,
		fields:   make(map[types.Category]*KeyField, len(types.Categories)),
		folded:   make([][]string, len(projects)),
		all:      make(types.ItemList, len(projects)),
	}
	for _, c := range types.Categories {
		if f, ok := facet.Field(c); ok {
			idx.fields[c] = EmptyKeyField(f)
		}
	}
	folder := facet.NewQueryMatcher("")
	for id := range projects {
		p := &projects[id]
		idx.all.AddId(id)
		for _, f := range idx.fields {
			f.AddValueLink(p, id)
		}
		texts := facet.SearchableText(p)
		for i, text := range texts {
			texts[i] = folder.Fold(text)
		}
		idx.folded[id] = texts
	}
	return idx
}

func (idx *ProjectIndex) Len() int {
	return len(idx.projects)
}

// Match returns the positions of projects passing every category gate.
// The query is not applied.
func (idx *ProjectIndex) Match(selection *types.FilterSelection) *types.ItemList {
	result := types.ItemList{}
	qm := types.NewQueryMerger(&result)
	if selection != nil {
		for _, c := range types.Categories {
			f, ok := idx.fields[c]
			if !ok {
				continue
			}
			selected := selection.Get(c)
			qm.Add(func() *types.ItemList {
				return f.Match(selected)
			})
		}
	}
	if !qm.Constrained() {
		return idx.all.Clone()
	}
	return &result
}

// MatchIds returns the matching positions in collection order.
func (idx *ProjectIndex) MatchIds(query string, selection *types.FilterSelection) []int {
	matching := idx.Match(selection)
	matcher := facet.NewQueryMatcher(query)
	ret := make([]int, 0, matching.Len())
	for id := range idx.projects {
		if !matching.Contains(id) {
			continue
		}
		if !matcher.MatchFolded(idx.folded[id]...) {
			continue
		}
		ret = append(ret, id)
	}
	return ret
}

func (idx *ProjectIndex) Filter(query string, selection *types.FilterSelection) []types.Project {
	ids := idx.MatchIds(query, selection)
	ret := make([]types.Project, len(ids))
	for i, id := range ids {
		ret[i] = idx.projects[id]
	}
	return ret
}

// Options returns the derived filter options of the indexed collection.
func (idx *ProjectIndex) Options() types.FilterOptions {
	ret := types.FilterOptions{}
	for _, c := range types.Categories {
		if f, ok := idx.fields[c]; ok {
			ret.Set(c, f.GetValues())
		} else {
			ret.Set(c, []string{})
		}
	}
	return ret
}

// Counts returns per category value counts within ids, all projects when ids is nil.
func (idx *ProjectIndex) Counts(ids []int) map[types.Category]map[string]int {
	var list *types.ItemList
	if ids != nil {
		list = types.NewItemList()
		for _, id := range ids {
			list.AddId(id)
		}
	}
	ret := make(map[types.Category]map[string]int, len(idx.fields))
	for c, f := range idx.fields {
		ret[c] = f.Counts(list)
	}
	return ret
}

var _ facet.Evaluator = (*ProjectIndex)(nil)
