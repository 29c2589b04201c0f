// Package harness runs identifier scenarios: executable statements of what
// the identifier variants accept, reject, and compute.
//
// # Scenario Format
//
// Scenarios are YAML documents:
//
//	name: phantom_cross_kind
//	description: "Foo's identifier is not a Bar's identifier"
//	variant: phantom
//	checks:
//	  - type: static
//	    expect: reject
//	    source: |
//	      package snippet
//	      import "github.com/roach88/idlink/internal/phantom"
//	      var bar phantom.ID[phantom.Bar] = phantom.New[phantom.Foo](1)
//	  - type: lookup
//	    kind: Foo
//	    insert: [1, 2, 3]
//	    present: [1, 2, 3]
//	    absent: [4]
//
// Every document is validated against a CUE schema (schema.cue) before it is
// decoded, so misspelled keys and wrong value types are reported with their
// position in the file.
//
// # Check Types
//
//   - static: type-check a Go source file; expect accept or reject (a
//     rejection must include a type mismatch)
//   - lookup: insert identifiers into a map, look them up by equal identifiers
//   - equality: compare two identifiers, optionally of different kinds
//   - format: compare String and GoString output
//   - accessor: an entity's ID() returns what it was built with
//
// Runtime checks resolve kind names through a fixed table per variant
// (see kinds.go). The unidirectional table includes Baz, whose identifier
// type is FooID, so the variant's loophole is observable in scenarios.
//
// # Golden Reports
//
// RunWithGolden compares a scenario's Result against
// testdata/golden/{scenario.Name}.golden. To regenerate:
//
//	go test ./internal/harness -update
package harness
