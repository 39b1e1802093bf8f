package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
	"github.com/matst80/craft-finder/pkg/types"
)

// Source produces the project collection for a session.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]types.Project, error)
}

// LoadSanitized loads from source and keeps only valid, normalized projects.
func LoadSanitized(ctx context.Context, source Source) ([]types.Project, error) {
	start := time.Now()
	projects, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source.Name(), err)
	}
	valid := Sanitize(projects)
	log.Printf("Loaded %d of %d projects from %s in %v", len(valid), len(projects), source.Name(), time.Since(start))
	return valid, nil
}

func decodeProjects(r io.Reader) ([]types.Project, error) {
	projects := make([]types.Project, 0)
	if err := jsoncompat.NewDecoder(r).Decode(&projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FileSource reads the dataset from disk storage.
type FileSource struct {
	Storage  *DiskStorage
	FileName string
}

func (f *FileSource) Name() string {
	name, _ := f.Storage.GetFileName(f.FileName)
	return "file:" + name
}

func (f *FileSource) Load(ctx context.Context) ([]types.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.Storage.LoadProjects(f.FileName)
}

// HTTPSource fetches the dataset document from a url.
type HTTPSource struct {
	Url    string
	Client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		Url:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (h *HTTPSource) Name() string {
	return h.Url
}

func (h *HTTPSource) Load(ctx context.Context) ([]types.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("failed to load project data: status %d", res.StatusCode)
	}
	return decodeProjects(res.Body)
}
