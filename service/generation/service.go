// Package generation defines the boundary to the external text-generation
// backend. The orchestrator issues exactly one call per branch, covering the
// branch's whole quota; retry policy, if any, belongs to the implementation.
package generation

import "context"

// Service is the generation backend. A failure is surfaced as the calling
// branch's failure and makes the whole request fail.
type Service interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
