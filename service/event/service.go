package event

import (
	"context"
	"log"

	"github.com/viant/qgen/service/messaging"
	"github.com/viant/qgen/service/messaging/memory"
)

// Service fans lifecycle events out to an optional listener.
type Service struct {
	queue    messaging.Queue[Event]
	cancelFn context.CancelFunc
}

// New creates an event service over the supplied queue; a nil queue falls
// back to an in-memory one.
func New(queue messaging.Queue[Event]) *Service {
	if queue == nil {
		queue = memory.NewQueue[Event](memory.DefaultConfig())
	}
	return &Service{queue: queue}
}

// Publish enqueues an event. Publishing never blocks: with no listener
// draining the queue the event is dropped once the buffer fills, and the
// resulting error is for the caller to log or ignore.
func (s *Service) Publish(ctx context.Context, event *Event) error {
	return s.queue.Publish(ctx, event)
}

// SetListener starts a consumer goroutine invoking handler for every event.
// A previous listener, if any, is stopped first.
func (s *Service) SetListener(handler func(*Event)) {
	s.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelFn = cancel
	go func() {
		for {
			msg, err := s.queue.Consume(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Printf("event listener: consume failed: %v", err)
				continue
			}
			if err := msg.Ack(); err != nil {
				log.Printf("event listener: ack failed: %v", err)
			}
			handler(msg.T())
		}
	}()
}

// Stop terminates the active listener, if any.
func (s *Service) Stop() {
	if s.cancelFn != nil {
		s.cancelFn()
		s.cancelFn = nil
	}
}
