package tracking

import (
	"github.com/matst80/craft-finder/pkg/messaging"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NewRabbitTracking publishes tracking events on the tracking topic.
func NewRabbitTracking(url string) (*QueuedTracking, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err = messaging.DefineTopic(ch, messaging.DefaultPrefix, messaging.Tracking); err != nil {
		conn.Close()
		return nil, err
	}
	send := func(event any) error {
		return messaging.SendChange(conn, messaging.DefaultPrefix, messaging.Tracking, event)
	}
	return NewQueuedTracking(send, conn.Close), nil
}
