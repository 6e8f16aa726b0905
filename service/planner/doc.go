// Package planner regroups a joint allocation into per-kind branch plans.
// Each plan carries the branch total plus difficulty and cognitive-level
// tables accumulated per axis and renormalised over the branch total. The
// per-axis accumulation is deliberately lossy: when one difficulty pairs with
// several cognitive levels at uneven ratios the marginal tables cannot
// reproduce the exact joint counts. Prompt text is built from the marginal
// form, so the loss is part of the contract.
package planner
