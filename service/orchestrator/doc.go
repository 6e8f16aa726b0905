// Package orchestrator coordinates a complete generation request: it
// validates the proportion tables, derives the joint allocation and the
// per-kind branch plans, obtains the content summary once, and then runs one
// generation branch per kind in parallel. Branches share the summary but
// nothing else; each one builds its own prompt, calls the generation
// backend, parses the response and persists its artifact. A single join
// collects all branch outcomes - any branch failure fails the whole request
// with an error naming the failed branches, and no partial result is
// returned.
package orchestrator
