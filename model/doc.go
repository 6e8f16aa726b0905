// Package model contains the in-memory representation of generation
// requests and results: proportion tables, the joint allocation and branch
// plans derived from them, and the typed question records produced by the
// response parsers. The root model package aggregates those building blocks
// so that they can be referenced from other parts of the code base with a
// single import.
package model
