// Package event publishes branch lifecycle events over the messaging queue
// so that host applications can observe request progress without coupling to
// orchestrator internals. Publishing is best effort: a full queue or absent
// listener never affects the request outcome.
package event

import (
	"time"

	"github.com/viant/qgen/internal/clock"
	"github.com/viant/qgen/model"
)

// Event types emitted by the orchestrator.
const (
	TypeSummaryReady    = "summaryReady"
	TypeBranchStarted   = "branchStarted"
	TypeBranchCompleted = "branchCompleted"
	TypeBranchFailed    = "branchFailed"
)

// Event describes one lifecycle transition within a generation request.
type Event struct {
	Type      string     `json:"type"`
	RequestID string     `json:"requestID"`
	Kind      model.Kind `json:"kind,omitempty"`
	Items     int        `json:"items,omitempty"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewEvent creates an event stamped with the current time.
func NewEvent(eventType, requestID string) *Event {
	return &Event{Type: eventType, RequestID: requestID, CreatedAt: clock.Now()}
}
