package etl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	KindPassthrough   = "passthrough"
	KindSewForCharity = "sewforcharity"
)

type SourceConfig struct {
	File string `yaml:"file"`
	Kind string `yaml:"kind"`
}

// Pipeline lists the sources of a merge in order.
type Pipeline struct {
	Sources []SourceConfig `yaml:"sources"`
}

func (s SourceConfig) transformer() (Transformer, error) {
	if s.File == "" {
		return nil, fmt.Errorf("source without file")
	}
	switch s.Kind {
	case "", KindPassthrough:
		return &Passthrough{File: s.File}, nil
	case KindSewForCharity:
		t := NewSewForCharity()
		if s.File != t.SourceFile() {
			return &namedSource{Transformer: t, file: s.File}, nil
		}
		return t, nil
	}
	return nil, fmt.Errorf("source %s: unknown kind %q", s.File, s.Kind)
}

type namedSource struct {
	Transformer
	file string
}

func (n *namedSource) SourceFile() string {
	return n.file
}

func (p *Pipeline) Transformers() ([]Transformer, error) {
	ret := make([]Transformer, 0, len(p.Sources))
	for _, s := range p.Sources {
		t, err := s.transformer()
		if err != nil {
			return nil, err
		}
		ret = append(ret, t)
	}
	return ret, nil
}

func ParsePipeline(data []byte) (*Pipeline, error) {
	p := &Pipeline{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse pipeline: %w", err)
	}
	if len(p.Sources) == 0 {
		return nil, fmt.Errorf("parse pipeline: no sources")
	}
	return p, nil
}

func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline: %w", err)
	}
	return ParsePipeline(data)
}
