package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/qgen/service/messaging"
)

type payload struct {
	Value string
}

func TestQueue_PublishConsume(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())
	ctx := context.Background()

	assert.Nil(t, queue.Publish(ctx, &payload{Value: "a"}))
	assert.Nil(t, queue.Publish(ctx, &payload{Value: "b"}))
	assert.EqualValues(t, 2, queue.Size())

	msg, err := queue.Consume(ctx)
	assert.Nil(t, err)
	assert.EqualValues(t, "a", msg.T().Value)
	assert.Nil(t, msg.Ack())
	assert.NotNil(t, msg.Ack())
}

func TestQueue_NackRedelivers(t *testing.T) {
	config := DefaultConfig()
	config.RetryDelay = time.Millisecond
	queue := NewQueue[payload](config)
	ctx := context.Background()

	assert.Nil(t, queue.Publish(ctx, &payload{Value: "retry"}))
	msg, err := queue.Consume(ctx)
	assert.Nil(t, err)
	assert.Nil(t, msg.Nack(context.DeadlineExceeded))

	redeliverCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	again, err := queue.Consume(redeliverCtx)
	assert.Nil(t, err)
	assert.EqualValues(t, "retry", again.T().Value)
}

func TestQueue_PublishDropsWhenFull(t *testing.T) {
	config := DefaultConfig()
	config.QueueBuffer = 1
	queue := NewQueue[payload](config)
	ctx := context.Background()

	assert.Nil(t, queue.Publish(ctx, &payload{Value: "a"}))
	// no consumer drains the queue; the publisher must not block
	err := queue.Publish(ctx, &payload{Value: "b"})
	assert.True(t, errors.Is(err, messaging.ErrQueueFull))
	assert.EqualValues(t, 1, queue.Size())
}

func TestQueue_ConsumeHonoursContext(t *testing.T) {
	queue := NewQueue[payload](DefaultConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := queue.Consume(ctx)
	assert.NotNil(t, err)
}
