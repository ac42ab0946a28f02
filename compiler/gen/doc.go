// Package gen is the staged-builder generation engine. It validates
// loaded schemas, enumerates the required-field state lattice, resolves
// per-field value-production strategies, and emits the builder source.
//
// The pipeline per schema is pure and single-pass:
//
//	load.Schema -> NewType -> Validate -> lattice -> plans -> emit
//
// A validation conflict aborts generation for that one schema with zero
// declarations emitted; schemas are otherwise independent and are
// generated in parallel.
//
// # Generated API shape
//
// For a schema Config with required fields host, port and an optional
// field timeout, the engine emits one struct type per state of the
// "which required fields are set" lattice:
//
//	ConfigBuilder_MissingHost_MissingPort
//	ConfigBuilder_HasHost_MissingPort
//	ConfigBuilder_MissingHost_HasPort
//	ConfigBuilder_HasHost_HasPort
//
// Setters for required fields move between states; setters for optional
// fields return the receiver's own type. Build is defined only on the
// all-set state, so an incomplete construction fails to compile in the
// consuming project.
//
// Auto-convert setters need a type parameter, which Go methods cannot
// declare, so they are emitted as package-level generic functions named
// after the state and setter (e.g. ConfigBuilder_MissingHost_MissingPort_Host).
package gen
