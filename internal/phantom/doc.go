// Package phantom provides one identifier type for every entity kind.
//
// ID[E] wraps an int64 payload next to a zero-sized marker that mentions E.
// The marker has no runtime footprint and is never read; its only job is to
// make ID[Foo] and ID[Bar] different types, so one kind's identifier cannot
// be used where another's is required.
//
// Equality, hashing, ordering and formatting are written by hand against the
// payload. == on ID[E] compares the payload only because the marker is a
// blank field, and blank fields do not take part in struct comparison or in
// map hashing.
//
// # The recursive bound
//
// An entity kind E may use ID[E] only if E is an Entity whose identifier type
// is exactly ID[E]. Go does not allow a generic type to name itself in its own
// type parameter list, so the bound is carried by the constructor instead:
//
//	func New[E ident.Entity[ID[E]]](raw int64) ID[E]
//
// New[Foo] compiles only when Foo.ID() returns ID[Foo]. The methods on ID
// need no bound at all, which keeps E free of any capability requirements:
// Foo does not have to be comparable, hashable or printable for ID[Foo] to be.
//
// Declaring an entity kind takes no per-kind identifier code:
//
//	type Foo struct{ id phantom.ID[Foo] }
//
//	func (f Foo) ID() phantom.ID[Foo] { return f.id }
//
//	var _ ident.Link[Foo, phantom.ID[Foo], int64]
package phantom
