package facet

import "github.com/matst80/craft-finder/pkg/types"

func knitBlankets() types.Project {
	return types.Project{
		Title:           "Knit Blankets",
		Need:            types.UrgencyHigh,
		Craft:           types.StringList{"Knitting"},
		Category:        "Health",
		Organiser:       types.Organiser{Name: "Wrap With Love", Location: "NSW"},
		Materials:       []types.Material{{Type: "Yarn", Amount: "2kg"}},
		ApproximateTime: "1-2 hours",
	}
}

func sewBibs() types.Project {
	return types.Project{
		Title:           "Sew Bibs",
		Need:            types.UrgencyLow,
		Craft:           types.StringList{"Sewing"},
		Category:        "Family",
		Organiser:       types.Organiser{Name: "Bibs For Babies", Location: "VIC"},
		Materials:       []types.Material{{Type: "Fabric", Amount: "1m"}},
		ApproximateTime: "Over 4 hours",
	}
}

func softToys() types.Project {
	return types.Project{
		Title:           "Soft Toys",
		Need:            types.UrgencyMedium,
		Craft:           types.StringList{"Sewing", "Knitting", "Crochet"},
		Category:        "Family Services",
		Organiser:       types.Organiser{Name: "Sewing for Charity Australia", Location: "QLD"},
		Materials:       []types.Material{{Type: "Fabric/Yarn", Amount: "See pattern"}, {Type: "Stuffing", Amount: "200g"}},
		ApproximateTime: "Varies",
	}
}

// bareProject has every optional field absent.
func bareProject() types.Project {
	return types.Project{
		Title:     "Mystery Parcel",
		Category:  "Health",
		Organiser: types.Organiser{Name: "Anonymous"},
	}
}

func testProjects() []types.Project {
	return []types.Project{knitBlankets(), sewBibs(), softToys(), bareProject()}
}

func titles(projects []types.Project) []string {
	ret := make([]string, len(projects))
	for i, p := range projects {
		ret[i] = p.Title
	}
	return ret
}

func selectionOf(c types.Category, values ...string) *types.FilterSelection {
	s := &types.FilterSelection{}
	for _, v := range values {
		s.Toggle(c, v)
	}
	return s
}
