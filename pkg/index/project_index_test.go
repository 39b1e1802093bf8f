package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matst80/craft-finder/pkg/facet"
	"github.com/matst80/craft-finder/pkg/types"
)

func testProjects() []types.Project {
	return []types.Project{
		{
			Title:           "Knit Blankets",
			Need:            types.UrgencyHigh,
			Craft:           types.StringList{"Knitting"},
			Category:        "Health",
			Organiser:       types.Organiser{Name: "Wrap With Love", Location: "NSW"},
			Materials:       []types.Material{{Type: "Yarn", Amount: "2kg"}},
			ApproximateTime: "1-2 hours",
		},
		{
			Title:           "Sew Bibs",
			Need:            types.UrgencyLow,
			Craft:           types.StringList{"Sewing"},
			Category:        "Family",
			Organiser:       types.Organiser{Name: "Bibs For Babies", Location: "VIC"},
			Materials:       []types.Material{{Type: "Fabric", Amount: "1m"}},
			ApproximateTime: "Over 4 hours",
		},
		{
			Title:           "Soft Toys",
			Need:            types.UrgencyMedium,
			Craft:           types.StringList{"Sewing", "Knitting", "Crochet"},
			Category:        "Family Services",
			Organiser:       types.Organiser{Name: "Sewing for Charity Australia", Location: "QLD"},
			Materials:       []types.Material{{Type: "Fabric/Yarn", Amount: "See pattern"}},
			ApproximateTime: "Varies",
		},
		{
			Title:     "Worry Worms",
			Craft:     types.StringList{"Crochet"},
			Category:  "Health",
			Organiser: types.Organiser{Name: "Sewing for Charity Australia", Location: "QLD"},
		},
		{
			Title:     "Mystery Parcel",
			Organiser: types.Organiser{Name: "Anonymous"},
		},
	}
}

type filterCase struct {
	name  string
	query string
	set   map[types.Category][]string
}

func (c filterCase) selection() *types.FilterSelection {
	s := &types.FilterSelection{}
	for cat, values := range c.set {
		for _, v := range values {
			s.Toggle(cat, v)
		}
	}
	return s
}

var filterCases = []filterCase{
	{name: "everything"},
	{name: "query only", query: "sew"},
	{name: "query organiser", query: "charity"},
	{name: "craft", set: map[types.Category][]string{types.CategoryCraft: {"Knitting"}}},
	{name: "craft or", set: map[types.Category][]string{types.CategoryCraft: {"Crochet", "Sewing"}}},
	{name: "craft and location", set: map[types.Category][]string{types.CategoryCraft: {"Crochet"}, types.CategoryLocation: {"QLD"}}},
	{name: "need absent", set: map[types.Category][]string{types.CategoryNeed: {"High", "Medium", "Low", "None"}}},
	{name: "unknown value", set: map[types.Category][]string{types.CategoryLocation: {"TAS"}}},
	{name: "material", set: map[types.Category][]string{types.CategoryMaterialType: {"Yarn", "Fabric"}}},
	{name: "time", set: map[types.Category][]string{types.CategoryApproximateTime: {"Varies", "Over 4 hours"}}},
	{name: "query and category", query: "o", set: map[types.Category][]string{types.CategoryCategory: {"Health", "Family"}}},
	{name: "all categories", query: "blank", set: map[types.Category][]string{
		types.CategoryNeed:            {"High"},
		types.CategoryCraft:           {"Knitting"},
		types.CategoryMaterialType:    {"Yarn"},
		types.CategoryCategory:        {"Health"},
		types.CategoryLocation:        {"NSW"},
		types.CategoryApproximateTime: {"1-2 hours"},
	}},
}

func TestProjectIndexMatchesLinearFilter(t *testing.T) {
	projects := testProjects()
	evaluators := map[string]facet.Evaluator{
		"linear": facet.LinearEvaluator{Projects: projects},
		"index":  NewProjectIndex(projects),
	}
	for _, tt := range filterCases {
		want := facet.FilterProjects(projects, tt.query, tt.selection())
		for name, ev := range evaluators {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				got := ev.Filter(tt.query, tt.selection())
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("%s result differs from linear filter (-want +got):\n%s", name, diff)
				}
			})
		}
	}
}

func TestProjectIndexOptionsMatchDerived(t *testing.T) {
	projects := testProjects()
	idx := NewProjectIndex(projects)
	if diff := cmp.Diff(facet.DeriveOptions(projects), idx.Options()); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectIndexMatchWithoutSelection(t *testing.T) {
	idx := NewProjectIndex(testProjects())
	if got := idx.Match(nil); got.Len() != idx.Len() {
		t.Errorf("expected all %d projects, got %d", idx.Len(), got.Len())
	}
	if got := idx.Match(&types.FilterSelection{}); got.Len() != idx.Len() {
		t.Errorf("expected all %d projects, got %d", idx.Len(), got.Len())
	}
}

func TestProjectIndexCounts(t *testing.T) {
	idx := NewProjectIndex(testProjects())
	all := idx.Counts(nil)
	if all[types.CategoryCraft]["Crochet"] != 2 || all[types.CategoryCraft]["Sewing"] != 2 {
		t.Errorf("unexpected craft counts %v", all[types.CategoryCraft])
	}

	ids := idx.MatchIds("", &types.FilterSelection{Location: types.NewSelection("QLD")})
	counts := idx.Counts(ids)
	want := map[string]int{"Crochet": 2, "Sewing": 1, "Knitting": 1}
	if diff := cmp.Diff(want, counts[types.CategoryCraft]); diff != "" {
		t.Errorf("craft counts mismatch (-want +got):\n%s", diff)
	}
	if _, ok := counts[types.CategoryLocation]["NSW"]; ok {
		t.Errorf("expected NSW to be absent from QLD result counts")
	}
}

func TestCatalogReplace(t *testing.T) {
	c := NewCatalog()
	if c.IsLoaded() || c.Current() != nil {
		t.Fatalf("expected empty catalog")
	}
	first := c.Replace(testProjects())
	second := c.Replace(testProjects()[:2])
	if first.Version == second.Version {
		t.Errorf("expected different content to change version")
	}
	if c.Current() != second {
		t.Errorf("expected latest snapshot to be current")
	}
	if len(first.Projects) != 5 || first.Index.Len() != 5 {
		t.Errorf("expected previous snapshot to stay intact")
	}
	state := &types.FilterState{Query: "sew"}
	if got := second.Filter(state); len(got) != 1 || got[0].Title != "Sew Bibs" {
		t.Errorf("unexpected filter result %v", got)
	}
}

func TestSnapshotVersionFollowsContent(t *testing.T) {
	a := NewSnapshot(testProjects())
	b := NewSnapshot(testProjects())
	if a.Version != b.Version {
		t.Errorf("expected equal datasets to share version, got %s and %s", a.Version, b.Version)
	}
	changed := testProjects()
	changed[0].Need = types.UrgencyLow
	if c := NewSnapshot(changed); c.Version == a.Version {
		t.Errorf("expected changed need to change version %s", c.Version)
	}
}
