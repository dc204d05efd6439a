// Package template defines renderer-agnostic template interfaces and
// adapters so renderers stay decoupled from the concrete engine.
package template
