// Package cmdpro is a command line argument parsing library for Go built
// around an explicit parameter registry.
//
// Callers declare typed, named parameters with one or more flag aliases,
// hand the processor a raw argument list, and query the converted values
// back by name. The reserved --help and --version tokens short-circuit
// parsing, emit caller-provided text, and raise an abort flag so embedding
// applications can skip normal execution.
//
// All malformed input is reported as typed, recoverable errors; the library
// never exits the process.
package cmdpro

//go:generate gomarkdoc ./ -o docs/cmdpro.md
