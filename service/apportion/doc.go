// Package apportion converts proportion tables and an integer total into
// exact integer quotas with zero rounding drift.
//
// Two variants exist on purpose and must not be unified: Allocate splits a
// request total jointly across three axes using the largest-remainder method
// with a descending-fractional-remainder tie-break, while Split divides a
// single branch total across two axes by rounding each share and assigning
// the leftover to the largest group. The two policies produce different
// results for some inputs; both are part of the engine's contract.
package apportion
