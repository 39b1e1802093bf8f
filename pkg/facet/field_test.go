package facet

import (
	"testing"

	"github.com/matst80/craft-finder/pkg/types"
)

func TestFieldKinds(t *testing.T) {
	multi := map[types.Category]bool{
		types.CategoryCraft:        true,
		types.CategoryMaterialType: true,
	}
	for _, c := range types.Categories {
		f, ok := Field(c)
		if !ok {
			t.Fatalf("missing field for %v", c)
		}
		if f.GetCategory() != c {
			t.Errorf("field for %v reports %v", c, f.GetCategory())
		}
		if f.IsMultiValued() != multi[c] {
			t.Errorf("%v: expected multi valued %v", c, multi[c])
		}
	}
	if _, ok := Field(types.Category(42)); ok {
		t.Errorf("expected unknown category to have no field")
	}
}

func TestMultiValueFieldSkipsEmptyValues(t *testing.T) {
	f, _ := Field(types.CategoryCraft)
	p := types.Project{Craft: types.StringList{"", "Knitting"}}
	values := f.Values(&p)
	if len(values) != 1 || values[0] != "Knitting" {
		t.Errorf("expected [Knitting], got %v", values)
	}
	sel := types.NewSelection("Knitting")
	if !f.Match(&p, &sel) {
		t.Errorf("expected match")
	}
}

func TestSingleValueFieldMatch(t *testing.T) {
	f, _ := Field(types.CategoryNeed)
	sel := types.NewSelection("High", "Low")
	if !f.Match(&types.Project{Need: types.UrgencyLow}, &sel) {
		t.Errorf("expected Low to match")
	}
	if f.Match(&types.Project{Need: types.UrgencyMedium}, &sel) {
		t.Errorf("expected Medium not to match")
	}
	if f.Match(&types.Project{}, &sel) {
		t.Errorf("expected absent need not to match")
	}
}
