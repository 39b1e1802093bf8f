package storage

import (
	"fmt"
	"log"
	"strings"

	"github.com/matst80/craft-finder/pkg/types"
)

// Validate checks the fields every listed project must carry.
func Validate(p *types.Project) error {
	missing := make([]string, 0)
	if strings.TrimSpace(p.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(p.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(p.Organiser.Name) == "" {
		missing = append(missing, "organiser")
	}
	if strings.TrimSpace(p.Category) == "" {
		missing = append(missing, "category")
	}
	if len(cleanList(p.Craft)) == 0 {
		missing = append(missing, "craft")
	}
	if len(p.Materials) == 0 {
		missing = append(missing, "materials")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w %q: missing %s", ErrInvalidProject, p.Title, strings.Join(missing, ", "))
	}
	if p.Need != "" && !p.Need.IsKnown() {
		return fmt.Errorf("%w %q: unknown need %q", ErrInvalidProject, p.Title, p.Need)
	}
	return nil
}

func cleanList(values []string) []string {
	ret := make([]string, 0, len(values))
	for _, v := range values {
		if part := strings.TrimSpace(v); part != "" {
			ret = append(ret, part)
		}
	}
	return ret
}

// Normalize trims facet values and drops empty list entries so the filter
// core only sees clean values.
func Normalize(p types.Project) types.Project {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	p.ApproximateTime = strings.TrimSpace(p.ApproximateTime)
	p.Need = types.Urgency(strings.TrimSpace(string(p.Need)))
	p.Organiser.Name = strings.TrimSpace(p.Organiser.Name)
	p.Organiser.Location = strings.TrimSpace(p.Organiser.Location)
	p.Craft = cleanList(p.Craft)
	p.Equipment = cleanList(p.Equipment)
	materials := make([]types.Material, 0, len(p.Materials))
	for _, m := range p.Materials {
		m.Type = strings.TrimSpace(m.Type)
		if m.Type == "" && strings.TrimSpace(m.Amount) == "" {
			continue
		}
		materials = append(materials, m)
	}
	p.Materials = materials
	return p
}

// Sanitize normalizes every project and drops the ones failing validation.
func Sanitize(projects []types.Project) []types.Project {
	ret := make([]types.Project, 0, len(projects))
	for _, p := range projects {
		p = Normalize(p)
		if err := Validate(&p); err != nil {
			log.Printf("Skipping project: %v", err)
			continue
		}
		ret = append(ret, p)
	}
	return ret
}
