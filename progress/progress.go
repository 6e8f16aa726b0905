// Package progress provides a lightweight tracker that keeps aggregated
// branch counters for a single generation request. The tracker instance
// lives in the request context - every component that receives the context
// can atomically update the counters via the Delta helper without requiring
// a global registry.
package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted while a request
// runs. Fields are signed, so both increments and decrements are valid.
type Delta struct {
	Branches  int
	Running   int
	Completed int
	Failed    int
	Items     int
}

// Snapshot is a point-in-time copy of the tracker counters.
type Snapshot struct {
	RequestID string
	ScopeID   string
	StartedAt time.Time

	Branches          int
	RunningBranches   int
	CompletedBranches int
	FailedBranches    int
	ParsedItems       int
}

// Progress keeps aggregated branch counters for one generation request. It
// is safe for concurrent use.
type Progress struct {
	mux      sync.Mutex
	state    Snapshot
	onChange func(Snapshot)
}

// New creates a tracker for the supplied request.
func New(requestID, scopeID string, onChange func(Snapshot)) *Progress {
	return &Progress{
		state: Snapshot{
			RequestID: requestID,
			ScopeID:   scopeID,
			StartedAt: time.Now(),
		},
		onChange: onChange,
	}
}

// Update applies the supplied delta. When an onChange callback is registered
// it receives a value copy outside the critical section, so slow observers
// never block branch goroutines.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.state.Branches += d.Branches
	p.state.RunningBranches += d.Running
	p.state.CompletedBranches += d.Completed
	p.state.FailedBranches += d.Failed
	p.state.ParsedItems += d.Items
	snapshot := p.state
	cb := p.onChange
	p.mux.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy suitable for read-only inspection.
func (p *Progress) Snapshot() Snapshot {
	if p == nil {
		return Snapshot{}
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.state
}

// OnChange registers a callback invoked after every Update; nil disables it.
func (p *Progress) OnChange(cb func(Snapshot)) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.onChange = cb
	p.mux.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker, embeds it in a derived context and
// returns both.
func WithNewTracker(ctx context.Context, requestID, scopeID string, onChange func(Snapshot)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracker := New(requestID, scopeID, onChange)
	return context.WithValue(ctx, trackerKey, tracker), tracker
}

// FromContext extracts the tracker from ctx when present.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tracker, ok := ctx.Value(trackerKey).(*Progress)
	return tracker, ok
}

// UpdateCtx applies the delta to the context tracker, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tracker, ok := FromContext(ctx); ok {
		tracker.Update(d)
	}
}
