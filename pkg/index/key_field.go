package index

import (
	"github.com/matst80/craft-finder/pkg/facet"
	"github.com/matst80/craft-finder/pkg/types"
)

// KeyField holds the postings of one category: value -> project positions.
type KeyField struct {
	Field facet.ValueField
	Keys  map[string]types.ItemList
}

func EmptyKeyField(field facet.ValueField) *KeyField {
	return &KeyField{
		Field: field,
		Keys:  map[string]types.ItemList{},
	}
}

func (f *KeyField) AddValueLink(p *types.Project, id int) bool {
	added := false
	for _, v := range f.Field.Values(p) {
		if k, ok := f.Keys[v]; ok {
			k.AddId(id)
		} else {
			f.Keys[v] = types.ItemList{id: struct{}{}}
		}
		added = true
	}
	return added
}

// Match returns every project having at least one of the selected values.
// An empty selection is unconstrained and returns nil.
func (f *KeyField) Match(selected *types.Selection) *types.ItemList {
	if selected == nil || selected.IsEmpty() {
		return nil
	}
	ret := make(types.ItemList)
	for _, v := range selected.Values() {
		if ids, ok := f.Keys[v]; ok {
			ret.Merge(&ids)
		}
	}
	return &ret
}

// GetValues returns the distinct values in display order.
func (f *KeyField) GetValues() []string {
	ret := make([]string, 0, len(f.Keys))
	for value := range f.Keys {
		ret = append(ret, value)
	}
	facet.SortOptions(f.Field.GetCategory(), ret)
	return ret
}

// Counts returns how many of ids carry each value.
func (f *KeyField) Counts(ids *types.ItemList) map[string]int {
	ret := make(map[string]int, len(f.Keys))
	for value, list := range f.Keys {
		count := 0
		if ids == nil {
			count = len(list)
		} else {
			for id := range list {
				if ids.Contains(id) {
					count++
				}
			}
		}
		if count > 0 {
			ret[value] = count
		}
	}
	return ret
}
