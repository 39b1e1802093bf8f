package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/matst80/craft-finder/pkg/etl"
	"github.com/matst80/craft-finder/pkg/messaging"
	"github.com/matst80/craft-finder/pkg/storage"
)

var (
	sourcesDir = flag.String("sources", "data/sources", "directory holding the source files")
	outDir     = flag.String("out", "data", "directory the merged dataset is written to")
	outFile    = flag.String("file", storage.DefaultProjectsFile, "name of the merged dataset, .gz to compress")
	publish    = flag.Bool("publish", false, "announce the new dataset on the dataset_changed topic")
	pipeline   = flag.String("pipeline", "", "yaml file listing the sources in merge order")
)

func main() {
	flag.Parse()
	log.Printf("Starting merge from %s", *sourcesDir)

	transformers := etl.DefaultTransformers()
	if *pipeline != "" {
		p, err := etl.LoadPipeline(*pipeline)
		if err != nil {
			log.Fatalf("Failed to load pipeline: %v", err)
		}
		if transformers, err = p.Transformers(); err != nil {
			log.Fatalf("Invalid pipeline: %v", err)
		}
	}
	merger := etl.NewMerger(storage.NewDiskStorage(*sourcesDir), transformers...)
	result := merger.Merge()

	out := storage.NewDiskStorage(*outDir)
	if err := out.SaveProjects(result.Projects, *outFile); err != nil {
		log.Fatalf("Failed to write %s: %v", *outFile, err)
	}
	name, _ := out.GetFileName(*outFile)
	log.Printf("Merged %d projects into %s", len(result.Projects), name)

	if !*publish {
		return
	}
	rabbitUrl := os.Getenv("RABBIT_URL")
	if rabbitUrl == "" {
		rabbitUrl = os.Getenv("RABBIT_HOST")
	}
	if rabbitUrl == "" {
		log.Fatalf("publish requested but RABBIT_URL is not set")
	}
	sources := make([]string, 0, len(result.Sources))
	for _, s := range result.Sources {
		if s.Err == nil {
			sources = append(sources, s.File)
		}
	}
	change := messaging.DatasetChange{
		File:      *outFile,
		Projects:  len(result.Projects),
		Sources:   sources,
		CreatedAt: time.Now(),
	}
	if err := messaging.PublishDatasetChange(rabbitUrl, change); err != nil {
		log.Fatalf("Failed to publish dataset change: %v", err)
	}
	log.Printf("Published %s", messaging.DatasetChanged)
}
