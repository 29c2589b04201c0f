// Package unidirectional links entities to identifiers in one direction only.
//
// Each entity kind owns a bespoke identifier type (FooID, BarID). The entity
// declares which identifier it exposes through its ID accessor, and the
// declaration is checked with ident.Binding. The identifier type carries no
// back-reference to its entity.
//
// # Known limitation
//
// The compiler only checks that each entity's own declaration is consistent.
// Nothing stops a second, unrelated entity kind from declaring an existing
// identifier type as its own: Baz below exposes FooID and its Binding check
// compiles. This is the behavior the bidirectional package closes off, and
// it is kept here on purpose. Tests pin it as accepted.
package unidirectional
