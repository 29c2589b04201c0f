// Package typecheck verifies, in process, that identifier misuse is rejected
// by the Go type checker.
//
// The whole point of the identifier packages is that cross-kind use never
// compiles, so it cannot be observed by running code. This package runs
// go/types over a source file that imports the module's packages and reports
// what the compiler would have said.
//
// # Error Model
//
// There is one error category of interest: a type mismatch (a value of one
// identifier type used where another is required, or an entity/identifier
// pair that fails its ident.Link check). Those diagnostics carry
// CodeTypeMismatch. Anything else the checker reports (undefined names,
// unused variables) carries CodeTypeError and also makes the source
// rejected.
//
// # Package Resolution
//
//   - Packages inside the module are parsed straight from the module root
//   - Standard library packages are type-checked from GOROOT sources
//   - Other packages are located with go/build, which asks the go command
//     in module mode
//
// Imported packages are cached for the life of the Checker.
//
// Thread-safety: a Checker serializes checks with an internal mutex and is
// safe for concurrent use.
package typecheck
