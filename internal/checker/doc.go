// Package checker implements the header inspection pipeline: URL
// normalization, the resilient two-attempt header fetch and the
// sequential batch loop that produces one report record per URL.
//
// The package has no console dependency; user-facing events flow
// through the Emitter interface so callers decide how to render them.
package checker
