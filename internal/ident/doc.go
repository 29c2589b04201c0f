// Package ident defines the capabilities shared by every typed identifier
// and every entity in idlink.
//
// This package contains contracts and small payload helpers only. The
// variant packages (unidirectional, bidirectional, phantom, uuidid) import
// ident; ident imports nothing internal.
//
// Go has no associated types, so the link between an entity kind and its
// identifier type is threaded as an explicit pair of type parameters:
//
//	Entity[I]          entity exposes identifier type I via ID()
//	Identifier[R]      identifier wraps a raw payload of type R
//	Owned[E, R]        identifier additionally names its owning kind E
//
// The pair is checked where an entity is declared, by instantiating one of
// the zero-sized check types next to it:
//
//	var _ ident.Binding[Foo, FooID, int64] // Entity -> Identifier only
//	var _ ident.Link[Foo, FooID, int64]    // both directions
//
// A declaration that does not satisfy the check is a compile error. There is
// no runtime failure path anywhere in the identifier types.
//
// Key constraints:
//   - Identifiers are values: copy by assignment, compare with ==, use as map keys
//   - Equality, hashing and formatting read the payload only
//   - Payloads are never validated here; callers own that at their boundary
package ident
