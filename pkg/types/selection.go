package types

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
)

// Selection is an insertion ordered set of selected facet values.
// The zero value is an empty selection.
type Selection struct {
	values []string
	set    map[string]struct{}
}

func NewSelection(values ...string) Selection {
	s := Selection{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *Selection) Len() int {
	return len(s.values)
}

func (s *Selection) IsEmpty() bool {
	return len(s.values) == 0
}

func (s *Selection) Contains(value string) bool {
	_, ok := s.set[value]
	return ok
}

// ContainsAny reports whether at least one of values is selected.
func (s *Selection) ContainsAny(values []string) bool {
	for _, v := range values {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

// Values returns the selected values in selection order.
func (s *Selection) Values() []string {
	return slices.Clone(s.values)
}

func (s *Selection) Add(value string) bool {
	if value == "" || s.Contains(value) {
		return false
	}
	if s.set == nil {
		s.set = make(map[string]struct{})
	}
	s.set[value] = struct{}{}
	s.values = append(s.values, value)
	return true
}

func (s *Selection) Remove(value string) bool {
	if !s.Contains(value) {
		return false
	}
	delete(s.set, value)
	s.values = slices.DeleteFunc(s.values, func(v string) bool {
		return v == value
	})
	return true
}

// Toggle selects value when it is not selected and deselects it otherwise.
// Empty values are ignored.
func (s *Selection) Toggle(value string) {
	if value == "" {
		return
	}
	if !s.Remove(value) {
		s.Add(value)
	}
}

func (s *Selection) Clear() {
	s.values = nil
	s.set = nil
}

func (s Selection) Clone() Selection {
	return NewSelection(s.values...)
}

func (s Selection) MarshalJSON() ([]byte, error) {
	if s.values == nil {
		return []byte("[]"), nil
	}
	return jsoncompat.Marshal(s.values)
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var values []string
	if err := jsoncompat.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewSelection(values...)
	return nil
}

// FilterSelection is the active faceted filter state, one selection per category.
type FilterSelection struct {
	Need            Selection `json:"need"`
	Craft           Selection `json:"craft"`
	MaterialType    Selection `json:"materialType"`
	Category        Selection `json:"category"`
	Location        Selection `json:"location"`
	ApproximateTime Selection `json:"approximateTime"`
}

// Get returns the selection for a category, nil for an unknown category.
func (f *FilterSelection) Get(c Category) *Selection {
	switch c {
	case CategoryNeed:
		return &f.Need
	case CategoryCraft:
		return &f.Craft
	case CategoryMaterialType:
		return &f.MaterialType
	case CategoryCategory:
		return &f.Category
	case CategoryLocation:
		return &f.Location
	case CategoryApproximateTime:
		return &f.ApproximateTime
	}
	return nil
}

func (f *FilterSelection) Toggle(c Category, value string) {
	if s := f.Get(c); s != nil {
		s.Toggle(value)
	}
}

func (f *FilterSelection) ClearCategory(c Category) {
	if s := f.Get(c); s != nil {
		s.Clear()
	}
}

func (f *FilterSelection) ClearAll() {
	*f = FilterSelection{}
}

func (f *FilterSelection) IsEmpty() bool {
	for _, c := range Categories {
		if !f.Get(c).IsEmpty() {
			return false
		}
	}
	return true
}

func (f *FilterSelection) Clone() FilterSelection {
	return FilterSelection{
		Need:            f.Need.Clone(),
		Craft:           f.Craft.Clone(),
		MaterialType:    f.MaterialType.Clone(),
		Category:        f.Category.Clone(),
		Location:        f.Location.Clone(),
		ApproximateTime: f.ApproximateTime.Clone(),
	}
}

// Key is a canonical representation that ignores selection order,
// two selections matching the same projects share a key.
func (f *FilterSelection) Key() string {
	var sb strings.Builder
	for _, c := range Categories {
		s := f.Get(c)
		if s.IsEmpty() {
			continue
		}
		values := s.Values()
		slices.Sort(values)
		sb.WriteString(c.Key())
		sb.WriteByte('=')
		for i, v := range values {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(v))
		}
		sb.WriteByte(';')
	}
	return sb.String()
}

type ActiveGroup struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Values   []string `json:"values"`
}

// ActiveGroups returns the categories with a selection, values in selection order.
func (f *FilterSelection) ActiveGroups() []ActiveGroup {
	ret := make([]ActiveGroup, 0)
	for _, c := range Categories {
		s := f.Get(c)
		if s.IsEmpty() {
			continue
		}
		ret = append(ret, ActiveGroup{
			Category: c,
			Label:    c.TagLabel(),
			Values:   s.Values(),
		})
	}
	return ret
}

// FilterState is what a client mutates between evaluations: a selection and a query.
type FilterState struct {
	Query     string          `json:"query"`
	Selection FilterSelection `json:"filters"`
}

func (s *FilterState) SetQuery(query string) {
	s.Query = query
}

func (s *FilterState) Toggle(c Category, value string) {
	s.Selection.Toggle(c, value)
}

func (s *FilterState) ClearCategory(c Category) {
	s.Selection.ClearCategory(c)
}

// ClearAll resets every category and the query.
func (s *FilterState) ClearAll() {
	s.Selection.ClearAll()
	s.Query = ""
}

func (s *FilterState) HasFilters() bool {
	return !s.Selection.IsEmpty()
}
