// Package messaging defines an abstract message queue used to fan branch
// lifecycle events out to interested listeners.
package messaging

import (
	"context"
	"errors"
)

// ErrQueueFull is returned by Publish when the queue cannot accept another
// message; publishers treat it as a dropped message, never as a reason to
// block.
var ErrQueueFull = errors.New("queue is full")

// Queue is an abstract message queue for any payload type.
type Queue[T any] interface {
	// Publish adds a new message with payload to the queue. It never blocks:
	// when the queue is at capacity it returns ErrQueueFull.
	Publish(ctx context.Context, t *T) error

	// Consume retrieves a single message from the queue.
	Consume(ctx context.Context) (Message[T], error)
}

// Message is a message retrieved from a queue.
type Message[T any] interface {
	// T returns the payload of this message.
	T() *T

	// Ack acknowledges successful processing of this message.
	Ack() error

	// Nack indicates failure in processing this message.
	Nack(err error) error
}
