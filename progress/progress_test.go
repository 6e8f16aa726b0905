package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Update(t *testing.T) {
	var observed []Snapshot
	tracker := New("req-1", "ch01", func(s Snapshot) {
		observed = append(observed, s)
	})

	tracker.Update(Delta{Branches: 3})
	tracker.Update(Delta{Running: 1})
	tracker.Update(Delta{Running: -1, Completed: 1, Items: 5})

	snapshot := tracker.Snapshot()
	assert.EqualValues(t, "req-1", snapshot.RequestID)
	assert.EqualValues(t, 3, snapshot.Branches)
	assert.EqualValues(t, 0, snapshot.RunningBranches)
	assert.EqualValues(t, 1, snapshot.CompletedBranches)
	assert.EqualValues(t, 5, snapshot.ParsedItems)
	assert.EqualValues(t, 3, len(observed))
	assert.EqualValues(t, 5, observed[2].ParsedItems)
}

func TestProgress_Context(t *testing.T) {
	ctx, tracker := WithNewTracker(context.Background(), "req-2", "ch02", nil)

	UpdateCtx(ctx, Delta{Branches: 2, Running: 2})
	UpdateCtx(ctx, Delta{Running: -1, Failed: 1})

	snapshot := tracker.Snapshot()
	assert.EqualValues(t, 2, snapshot.Branches)
	assert.EqualValues(t, 1, snapshot.RunningBranches)
	assert.EqualValues(t, 1, snapshot.FailedBranches)

	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}

func TestProgress_NilSafe(t *testing.T) {
	var tracker *Progress
	tracker.Update(Delta{Branches: 1})
	assert.EqualValues(t, Snapshot{}, tracker.Snapshot())
}
