package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeDeclarer is implemented by *amqp.Channel.
type ExchangeDeclarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
}

// DefineTopic declares the durable topic exchange for topic. Listeners bind
// their own exclusive queues to it.
func DefineTopic(ch ExchangeDeclarer, prefix string, topic ChangeTopic) error {
	name := getName(prefix, topic)
	if err := ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-delete
		false,   // internal
		false,   // noWait
		nil,     // arguments
	); err != nil {
		return err
	}
	return nil
}

func getName(prefix string, topic ChangeTopic) string {
	return fmt.Sprintf("%s_%s", prefix, topic)
}

func encodePublishing[V any](data V) (amqp.Publishing, error) {
	body, err := jsoncompat.Marshal(data)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	}, nil
}

// SendChange publishes data as json on the topic exchange.
func SendChange[V any](c *amqp.Connection, prefix string, topic ChangeTopic, data V) error {
	msg, err := encodePublishing(data)
	if err != nil {
		return err
	}
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	name := getName(prefix, topic)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return ch.PublishWithContext(ctx,
		name,
		name,
		false,
		false,
		msg,
	)
}

// PublishDatasetChange connects to url, makes sure the topic exists and sends change.
func PublishDatasetChange(url string, change DatasetChange) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	if err = DefineTopic(ch, DefaultPrefix, DatasetChanged); err != nil {
		ch.Close()
		return err
	}
	ch.Close()
	return SendChange(conn, DefaultPrefix, DatasetChanged, change)
}
