package facet

import (
	"cmp"
	"slices"

	"github.com/matst80/craft-finder/pkg/types"
)

// TimeLadder is the display order of approximate time labels.
var TimeLadder = []string{
	"Less than one hour",
	"1-2 hours",
	"2-4 hours",
	"Over 4 hours",
}

// timeRank places labels outside the ladder after every known label.
func timeRank(label string) int {
	if i := slices.Index(TimeLadder, label); i >= 0 {
		return i
	}
	return len(TimeLadder)
}

// CompareTime orders approximate time labels by the ladder, unknown labels
// last and ordinal among themselves.
func CompareTime(a, b string) int {
	if c := cmp.Compare(timeRank(a), timeRank(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// CompareOption returns the option ordering used for a category.
func CompareOption(c types.Category) func(a, b string) int {
	if c == types.CategoryApproximateTime {
		return CompareTime
	}
	return cmp.Compare[string]
}

// SortOptions sorts distinct values in place for display.
func SortOptions(c types.Category, values []string) {
	slices.SortFunc(values, CompareOption(c))
}

// DeriveOptions collects, per category, the distinct non-empty values that
// occur in projects, sorted for display.
func DeriveOptions(projects []types.Project) types.FilterOptions {
	ret := types.FilterOptions{}
	for _, c := range types.Categories {
		field, ok := Field(c)
		if !ok {
			continue
		}
		seen := make(map[string]struct{})
		values := make([]string, 0)
		for i := range projects {
			for _, v := range field.Values(&projects[i]) {
				if _, found := seen[v]; found {
					continue
				}
				seen[v] = struct{}{}
				values = append(values, v)
			}
		}
		SortOptions(c, values)
		ret.Set(c, values)
	}
	return ret
}
