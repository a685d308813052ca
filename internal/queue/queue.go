package queue

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Queue delivers email send jobs to subscribers. The payload is the
// email message ID as a string.
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
	Close() error
}

// InMemoryQueue is an in-process queue with retry, used when no AMQP
// broker is configured and in tests.
type InMemoryQueue struct {
	mu         sync.Mutex
	handlers   map[string][]func(payload any) error
	maxRetries int
	wg         sync.WaitGroup
	log        *logrus.Logger
}

// NewInMemoryQueue creates a new in-memory queue
func NewInMemoryQueue(maxRetries int, log *logrus.Logger) *InMemoryQueue {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if log == nil {
		log = logrus.New()
	}
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		maxRetries: maxRetries,
		log:        log,
	}
}

// jobPayload wraps a message payload with retry info
type jobPayload struct {
	payload    any
	retryCount int
	maxRetries int
}

// Publish sends a message to all subscribers of a topic
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := jobPayload{
		payload:    payload,
		maxRetries: q.maxRetries,
	}

	for _, handler := range handlers {
		q.wg.Add(1)
		go func(h func(payload any) error) {
			defer q.wg.Done()
			q.processJob(h, job)
		}(handler)
	}

	return nil
}

// processJob runs a handler with retries and exponential backoff
func (q *InMemoryQueue) processJob(handler func(payload any) error, job jobPayload) {
	for {
		err := handler(job.payload)
		if err == nil {
			return
		}

		job.retryCount++
		q.log.WithFields(logrus.Fields{
			"attempt": job.retryCount,
			"max":     job.maxRetries,
			"error":   err.Error(),
		}).Warn("Queue job failed")

		if job.retryCount >= job.maxRetries {
			q.log.WithField("attempts", job.retryCount).Error("Queue job permanently failed")
			return
		}

		time.Sleep(time.Duration(job.retryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Close waits for in-flight jobs to finish
func (q *InMemoryQueue) Close() error {
	q.wg.Wait()
	return nil
}
