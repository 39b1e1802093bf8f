package main

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/matst80/craft-finder/pkg/index"
	"github.com/matst80/craft-finder/pkg/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loadFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "craftfinder_dataset_load_failures_total",
	Help: "The total number of failed dataset loads",
})

// datasetLoader installs datasets from source into the catalog. A failed load
// keeps the snapshot that is already installed.
type datasetLoader struct {
	mu      sync.Mutex
	source  storage.Source
	catalog *index.Catalog
}

func (l *datasetLoader) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	projects, err := storage.LoadSanitized(ctx, l.source)
	if err != nil {
		loadFailures.Inc()
		return err
	}
	snapshot := l.catalog.Replace(projects)
	log.Printf("Installed dataset %s with %d projects", snapshot.Version, len(projects))
	return nil
}

// LoadUntilReady retries the first load every interval until it succeeds or
// ctx is done.
func (l *datasetLoader) LoadUntilReady(ctx context.Context, interval time.Duration) {
	for {
		err := l.Load(ctx)
		if err == nil {
			return
		}
		log.Printf("Failed to load dataset, retrying in %v: %v", interval, err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
