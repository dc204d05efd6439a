// Package orchestrator wires the loader, parser, docs model builder, and
// renderer registry into a single entry point, providing dependency
// injection friendly helpers for consumers that prefer one constructor call.
package orchestrator
