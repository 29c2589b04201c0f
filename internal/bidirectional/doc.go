// Package bidirectional links entities and identifiers in both directions.
//
// As in the unidirectional package, each entity kind owns a bespoke
// identifier type. In addition, each identifier type declares its single
// owning entity kind through a BelongsTo marker method:
//
//	func (FooID) BelongsTo(Foo) {}
//
// Entity declarations are checked with ident.Link, which requires both the
// accessor (Foo.ID() FooID) and the back-link (FooID.BelongsTo(Foo)). An
// entity kind that tries to reuse another kind's identifier type fails its
// Link check at compile time, and a FooID is never assignable where a BarID
// is required.
package bidirectional
