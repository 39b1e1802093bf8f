package facet

import (
	"github.com/matst80/craft-finder/pkg/types"
)

// ValueField reads the value(s) a project has for one category.
type ValueField interface {
	GetCategory() types.Category
	// Values returns the non-empty values of the project, possibly none.
	Values(p *types.Project) []string
	// Match reports whether the project satisfies a non-empty selection.
	// A project without a value never matches.
	Match(p *types.Project, selected *types.Selection) bool
	IsMultiValued() bool
}

// SingleValueField is a category where a project has at most one value.
type SingleValueField struct {
	Category types.Category
	Value    func(p *types.Project) string
}

func (f SingleValueField) GetCategory() types.Category {
	return f.Category
}

func (f SingleValueField) IsMultiValued() bool {
	return false
}

func (f SingleValueField) Values(p *types.Project) []string {
	if v := f.Value(p); v != "" {
		return []string{v}
	}
	return nil
}

func (f SingleValueField) Match(p *types.Project, selected *types.Selection) bool {
	v := f.Value(p)
	if v == "" {
		return false
	}
	return selected.Contains(v)
}

// MultiValueField is a category where a project may list several values.
type MultiValueField struct {
	Category types.Category
	List     func(p *types.Project) []string
}

func (f MultiValueField) GetCategory() types.Category {
	return f.Category
}

func (f MultiValueField) IsMultiValued() bool {
	return true
}

func (f MultiValueField) Values(p *types.Project) []string {
	list := f.List(p)
	ret := make([]string, 0, len(list))
	for _, v := range list {
		if v != "" {
			ret = append(ret, v)
		}
	}
	return ret
}

func (f MultiValueField) Match(p *types.Project, selected *types.Selection) bool {
	return selected.ContainsAny(f.List(p))
}

var fields = [...]ValueField{
	types.CategoryNeed: SingleValueField{
		Category: types.CategoryNeed,
		Value:    func(p *types.Project) string { return string(p.Need) },
	},
	types.CategoryCraft: MultiValueField{
		Category: types.CategoryCraft,
		List:     func(p *types.Project) []string { return p.Craft },
	},
	types.CategoryMaterialType: MultiValueField{
		Category: types.CategoryMaterialType,
		List:     func(p *types.Project) []string { return p.MaterialTypes() },
	},
	types.CategoryCategory: SingleValueField{
		Category: types.CategoryCategory,
		Value:    func(p *types.Project) string { return p.Category },
	},
	types.CategoryLocation: SingleValueField{
		Category: types.CategoryLocation,
		Value:    func(p *types.Project) string { return p.Organiser.Location },
	},
	types.CategoryApproximateTime: SingleValueField{
		Category: types.CategoryApproximateTime,
		Value:    func(p *types.Project) string { return p.ApproximateTime },
	},
}

// Field returns the value reader for a category.
func Field(c types.Category) (ValueField, bool) {
	if int(c) >= len(fields) {
		return nil, false
	}
	return fields[c], true
}
