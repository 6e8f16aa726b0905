// Package artifact defines the per-branch artifact sink. Each branch
// persists its parsed records exactly once, under a deterministic name; the
// orchestrator treats a sink failure as that branch's failure. Artifacts
// already written by successful branches are not rolled back when a sibling
// fails.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/qgen/model"
)

// ErrNotFound is returned when the requested artifact does not exist.
var ErrNotFound = errors.New("artifact: not found")

// Service persists branch artifacts.
type Service interface {
	// Save stores the item set under the supplied artifact name.
	Save(ctx context.Context, name string, items *model.ItemSet) error
}

// Name derives the deterministic artifact name for one branch:
// <scope>_<difficulty pcts>_<cognitive pcts>[_lo<objectives>]_<kind>.json,
// with each table label suffixed by its percentage share.
func Name(scopeID string, difficulty, cognitive model.Table, objectives []string, kind model.Kind) string {
	parts := []string{scopeID, percentages(difficulty), percentages(cognitive)}
	if len(objectives) > 0 {
		parts = append(parts, "lo"+strings.Join(objectives, "_"))
	}
	parts = append(parts, string(kind))
	return strings.Join(parts, "_") + ".json"
}

// percentages renders a table as label-percentage fragments, e.g.
// "basic30_advanced70".
func percentages(table model.Table) string {
	var parts []string
	for _, w := range table {
		parts = append(parts, fmt.Sprintf("%v%d", w.Label, int(w.Value*100)))
	}
	return strings.Join(parts, "_")
}
