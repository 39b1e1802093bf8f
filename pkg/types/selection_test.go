package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectionToggleKeepsOrder(t *testing.T) {
	s := Selection{}
	s.Toggle("Sewing")
	s.Toggle("Knitting")
	s.Toggle("Crochet")
	s.Toggle("Knitting")
	s.Toggle("Knitting")

	want := []string{"Sewing", "Crochet", "Knitting"}
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if !s.Contains("Crochet") || s.Contains("Weaving") {
		t.Errorf("unexpected membership for %v", s.Values())
	}
}

func TestSelectionIgnoresEmptyValue(t *testing.T) {
	s := NewSelection("", "Yarn", "Yarn")
	s.Toggle("")
	if s.Len() != 1 {
		t.Errorf("expected one value, got %v", s.Values())
	}
}

func TestSelectionCloneIsIndependent(t *testing.T) {
	s := NewSelection("a")
	c := s.Clone()
	c.Toggle("b")
	if s.Contains("b") {
		t.Errorf("clone mutated original")
	}
}

func TestFilterSelectionClearCategory(t *testing.T) {
	f := FilterSelection{}
	f.Toggle(CategoryCraft, "Knitting")
	f.Toggle(CategoryLocation, "NSW")
	f.ClearCategory(CategoryCraft)

	if !f.Craft.IsEmpty() {
		t.Errorf("expected craft cleared, got %v", f.Craft.Values())
	}
	if !f.Location.Contains("NSW") {
		t.Errorf("expected location to be kept")
	}
	if f.IsEmpty() {
		t.Errorf("expected selection to be non-empty")
	}
	f.ClearAll()
	if !f.IsEmpty() {
		t.Errorf("expected empty selection after ClearAll")
	}
}

func TestFilterSelectionKeyIgnoresOrder(t *testing.T) {
	a := FilterSelection{}
	a.Toggle(CategoryCraft, "Knitting")
	a.Toggle(CategoryCraft, "Sewing")
	a.Toggle(CategoryNeed, "High")

	b := FilterSelection{}
	b.Toggle(CategoryNeed, "High")
	b.Toggle(CategoryCraft, "Sewing")
	b.Toggle(CategoryCraft, "Knitting")

	if a.Key() != b.Key() {
		t.Errorf("expected equal keys, got %q and %q", a.Key(), b.Key())
	}

	c := FilterSelection{}
	c.Toggle(CategoryCraft, "Knitting,Sewing")
	if c.Key() == a.Key() {
		t.Errorf("expected distinct key for value containing separator")
	}
}

func TestActiveGroups(t *testing.T) {
	f := FilterSelection{}
	f.Toggle(CategoryLocation, "VIC")
	f.Toggle(CategoryCraft, "Sewing")
	f.Toggle(CategoryCraft, "Knitting")

	want := []ActiveGroup{
		{Category: CategoryCraft, Label: "Craft skill", Values: []string{"Sewing", "Knitting"}},
		{Category: CategoryLocation, Label: "Location", Values: []string{"VIC"}},
	}
	if diff := cmp.Diff(want, f.ActiveGroups()); diff != "" {
		t.Errorf("active groups mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterStateClearAllResetsQuery(t *testing.T) {
	s := FilterState{}
	s.SetQuery("knit")
	s.Toggle(CategoryNeed, "High")
	if !s.HasFilters() {
		t.Errorf("expected filters")
	}
	s.ClearAll()
	if s.Query != "" || s.HasFilters() {
		t.Errorf("expected cleared state, got %+v", s)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		parsed, ok := ParseCategory(c.Key())
		if !ok || parsed != c {
			t.Errorf("expected %v to round trip, got %v %v", c, parsed, ok)
		}
	}
	if _, ok := ParseCategory("colour"); ok {
		t.Errorf("expected unknown category to fail")
	}
}
