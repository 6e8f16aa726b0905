// Package parser turns raw generation-backend text into typed records.
//
// All three kind parsers share one shape: split the response on the kind's
// segment delimiter, discard the preamble before the first delimiter, then
// slice each segment between literal field markers in a fixed order. Markers
// are matched case-sensitively against the first occurrence of the remaining
// slice only; a missing marker leaves its field at the zero value. Parsing
// never fails - backend output is not guaranteed well-formed and a partially
// populated record is preferred over losing the record's position. Every
// non-empty segment yields exactly one record.
package parser
