// Package model defines the domain types and contracts for the clay CLI.
//
// The central type is the Printable interface: any value with a stable
// name, an explicit version, and a Create method producing a solid
// qualifies as a model. Concrete models live in the top-level models
// package; the lifecycle and export layers only ever see the interface
// and treat the produced solid as an opaque value.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
