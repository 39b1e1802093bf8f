package messaging

import (
	"time"

	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
	amqp "github.com/rabbitmq/amqp091-go"
)

type ChangeTopic string

const (
	DatasetChanged ChangeTopic = "dataset_changed"
	Tracking       ChangeTopic = "tracking"
)

// DefaultPrefix namespaces the exchanges of this service.
const DefaultPrefix = "craft"

// DatasetChange announces a newly written dataset file.
type DatasetChange struct {
	File      string    `json:"file"`
	Projects  int       `json:"projects"`
	Sources   []string  `json:"sources,omitempty"`
	CreatedAt time.Time `json:"created"`
}

func DecodeDatasetChange(d amqp.Delivery) (*DatasetChange, error) {
	change := &DatasetChange{}
	if err := jsoncompat.Unmarshal(d.Body, change); err != nil {
		return nil, err
	}
	return change, nil
}
