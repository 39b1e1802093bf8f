package etl

import (
	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
	"github.com/matst80/craft-finder/pkg/types"
)

// RawRecord is one undecoded element of a source file array.
type RawRecord []byte

func (r *RawRecord) UnmarshalJSON(data []byte) error {
	*r = append((*r)[0:0], data...)
	return nil
}

func (r RawRecord) Decode(v any) error {
	return jsoncompat.Unmarshal(r, v)
}

// Transformer turns the records of one source file into projects.
type Transformer interface {
	SourceFile() string
	Transform(records []RawRecord) ([]types.Project, error)
}

// Passthrough is used for sources already in the project schema.
type Passthrough struct {
	File string
}

func NewManual() *Passthrough {
	return &Passthrough{File: "manual.json"}
}

func NewARCG() *Passthrough {
	return &Passthrough{File: "arcg.json"}
}

func (p *Passthrough) SourceFile() string {
	return p.File
}

func (p *Passthrough) Transform(records []RawRecord) ([]types.Project, error) {
	ret := make([]types.Project, 0, len(records))
	for _, record := range records {
		var project types.Project
		if err := record.Decode(&project); err != nil {
			return nil, err
		}
		ret = append(ret, project)
	}
	return ret, nil
}
