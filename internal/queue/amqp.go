package queue

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// AMQPQueue publishes and consumes jobs through a RabbitMQ broker.
// Queues are declared durable so jobs survive broker restarts.
type AMQPQueue struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	maxRetries int
	log        *logrus.Logger
}

// NewAMQPQueue connects to the broker and opens a channel
func NewAMQPQueue(url string, maxRetries int, log *logrus.Logger) (*AMQPQueue, error) {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if log == nil {
		log = logrus.New()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	return &AMQPQueue{
		conn:       conn,
		channel:    ch,
		maxRetries: maxRetries,
		log:        log,
	}, nil
}

// Publish declares the queue and publishes the payload as JSON
func (q *AMQPQueue) Publish(topic string, payload any) error {
	if _, err := q.channel.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", topic, err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return q.channel.Publish(
		"",    // exchange
		topic, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// retryCount reads the redelivery counter stamped on republished copies.
// Brokers hand header numbers back in more than one integer width.
func retryCount(headers amqp.Table) int {
	switch v := headers["x-retry-count"].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// republish publishes a copy of a failed delivery with the retry counter
// stamped. A plain Nack requeue redelivers with unchanged headers, so the
// counter has to travel on a fresh message.
func (q *AMQPQueue) republish(topic string, body []byte, attempt int) error {
	return q.channel.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Headers:      amqp.Table{"x-retry-count": int32(attempt)},
			Body:         body,
		},
	)
}

// Subscribe consumes the queue and runs the handler per delivery. Failed
// deliveries are republished with an incremented retry counter until the
// limit, then dropped.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	if _, err := q.channel.QueueDeclare(
		topic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", topic, err)
	}

	msgs, err := q.channel.Consume(
		topic,
		"",
		false, // autoAck off for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer on %s: %w", topic, err)
	}

	go func() {
		for d := range msgs {
			var payload any
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				q.log.WithField("error", err.Error()).Warn("Dropping malformed queue message")
				d.Ack(false)
				continue
			}

			if err := handler(payload); err != nil {
				attempt := retryCount(d.Headers) + 1
				if attempt < q.maxRetries {
					q.log.WithFields(logrus.Fields{
						"attempt": attempt,
						"error":   err.Error(),
					}).Warn("Queue job failed, republishing for retry")
					if pubErr := q.republish(topic, d.Body, attempt); pubErr != nil {
						// Fall back to a broker requeue rather than lose the job
						q.log.WithField("error", pubErr.Error()).Error("Failed to republish queue job")
						d.Nack(false, true)
						continue
					}
					d.Ack(false)
					continue
				}
				q.log.WithFields(logrus.Fields{
					"attempts": attempt,
					"error":    err.Error(),
				}).Error("Queue job permanently failed")
			}

			d.Ack(false)
		}
	}()

	return nil
}

// Close shuts down the channel and connection
func (q *AMQPQueue) Close() error {
	if err := q.channel.Close(); err != nil {
		return err
	}
	return q.conn.Close()
}
