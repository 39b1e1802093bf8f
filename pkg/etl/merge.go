package etl

import (
	"cmp"
	"errors"
	"io/fs"
	"log"
	"slices"

	"github.com/matst80/craft-finder/pkg/storage"
	"github.com/matst80/craft-finder/pkg/types"
)

// DefaultTransformers lists the sources in merge order. Later sources
// overwrite earlier ones on duplicate keys.
func DefaultTransformers() []Transformer {
	return []Transformer{
		NewManual(),
		NewARCG(),
		NewSewForCharity(),
	}
}

type SourceResult struct {
	File    string
	Loaded  int
	Skipped int
	Err     error
}

type MergeResult struct {
	Projects []types.Project
	Sources  []SourceResult
}

// Merger reads the source files from Sources and merges them into one
// deduplicated, sorted project list.
type Merger struct {
	Sources      *storage.DiskStorage
	Transformers []Transformer
}

func NewMerger(sources *storage.DiskStorage, transformers ...Transformer) *Merger {
	if len(transformers) == 0 {
		transformers = DefaultTransformers()
	}
	return &Merger{
		Sources:      sources,
		Transformers: transformers,
	}
}

func (m *Merger) loadRecords(file string) ([]RawRecord, error) {
	records := make([]RawRecord, 0)
	if err := m.Sources.LoadJson(&records, file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return records, nil
}

func (m *Merger) Merge() *MergeResult {
	byKey := make(map[string]types.Project)
	result := &MergeResult{
		Sources: make([]SourceResult, 0, len(m.Transformers)),
	}
	for _, transformer := range m.Transformers {
		file := transformer.SourceFile()
		source := SourceResult{File: file}
		log.Printf("Processing source: %s", file)

		records, err := m.loadRecords(file)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Printf("Source file not found: %s", file)
			} else {
				log.Printf("Error decoding JSON from %s: %v", file, err)
			}
			source.Err = err
			result.Sources = append(result.Sources, source)
			continue
		}

		projects, err := transformer.Transform(records)
		if err != nil {
			log.Printf("Error transforming %s: %v", file, err)
			source.Err = err
			result.Sources = append(result.Sources, source)
			continue
		}
		for _, project := range projects {
			project = storage.Normalize(project)
			if err := storage.Validate(&project); err != nil {
				log.Printf("Skipping invalid project: %v", err)
				source.Skipped++
				continue
			}
			byKey[project.Key()] = project
			source.Loaded++
		}
		log.Printf("Loaded %d projects from %s", source.Loaded, file)
		result.Sources = append(result.Sources, source)
	}

	result.Projects = SortProjects(byKey)
	return result
}

// SortProjects returns the projects ordered by title, then organiser name.
func SortProjects(byKey map[string]types.Project) []types.Project {
	ret := make([]types.Project, 0, len(byKey))
	for _, p := range byKey {
		ret = append(ret, p)
	}
	slices.SortFunc(ret, func(a, b types.Project) int {
		if c := cmp.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return cmp.Compare(a.Organiser.Name, b.Organiser.Name)
	})
	return ret
}
