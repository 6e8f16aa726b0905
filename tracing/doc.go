// Package tracing provides a thin wrapper around OpenTelemetry so that the
// generation pipeline can instrument its stages (summary lookup, branch
// generation, parsing, persistence) without importing the upstream packages
// directly. Applications that do not need tracing simply skip Init - spans
// become no-ops.
package tracing
