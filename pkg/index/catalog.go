package index

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
	"github.com/matst80/craft-finder/pkg/facet"
	"github.com/matst80/craft-finder/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	totalProjects = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "craftfinder_projects_total",
		Help: "The total number of projects in the loaded dataset",
	})
	noReplacements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "craftfinder_dataset_replacements_total",
		Help: "The total number of dataset snapshots installed",
	})
)

// Snapshot is one immutable version of the dataset with everything derived from it.
type Snapshot struct {
	Version  string
	LoadedAt time.Time
	Projects []types.Project
	Options  types.FilterOptions
	Index    *ProjectIndex
}

func NewSnapshot(projects []types.Project) *Snapshot {
	return &Snapshot{
		Version:  contentVersion(projects),
		LoadedAt: time.Now(),
		Projects: projects,
		Options:  facet.DeriveOptions(projects),
		Index:    NewProjectIndex(projects),
	}
}

// contentVersion names the dataset by its content so replicas serving the
// same projects share cache keys.
func contentVersion(projects []types.Project) string {
	data, err := jsoncompat.Marshal(projects)
	if err != nil {
		log.Printf("Failed to hash dataset, using random version: %v", err)
		return uuid.NewString()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, data).String()
}

func (s *Snapshot) Filter(state *types.FilterState) []types.Project {
	return s.Index.Filter(state.Query, &state.Selection)
}

// Catalog hands out the current snapshot. Replacing the dataset swaps the
// snapshot, readers holding the previous one are unaffected.
type Catalog struct {
	current atomic.Pointer[Snapshot]
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Current returns the installed snapshot or nil before the first load.
func (c *Catalog) Current() *Snapshot {
	return c.current.Load()
}

func (c *Catalog) IsLoaded() bool {
	return c.current.Load() != nil
}

// Replace installs a new snapshot built from projects. The slice is owned by
// the catalog afterwards and must not be modified by the caller.
func (c *Catalog) Replace(projects []types.Project) *Snapshot {
	snapshot := NewSnapshot(projects)
	c.current.Store(snapshot)
	totalProjects.Set(float64(len(projects)))
	noReplacements.Inc()
	return snapshot
}
