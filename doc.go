// Package typestate provides the public API for defining staged-builder
// schemas and the error types reported by the generator.
//
// A schema describes one target struct and its construction constraints.
// The compiler packages (compiler/load, compiler/gen) turn a set of schemas
// into generated Go source: one builder type per "which required fields are
// set" state, setter methods that move between states, and a Build method
// that exists only on the state where every required field is set. Misuse
// is therefore rejected by the Go compiler of the consuming project, not
// at runtime.
package typestate
