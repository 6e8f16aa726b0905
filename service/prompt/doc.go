// Package prompt builds the batched generation prompt for one branch: a
// single request covering the branch's whole quota, with per-combination
// difficulty and cognitive-level guidelines and strict format instructions
// matching what the response parser expects.
package prompt
