package ident

import "fmt"

// Identifier is the capability every identifier type satisfies.
//
// Equality and map-key use come from comparable. Duplication is plain
// assignment: conforming types hold no pointers to shared state, so a copy
// never aliases the original and using an identifier never consumes it.
type Identifier[R comparable] interface {
	comparable
	fmt.Stringer
	fmt.GoStringer

	// Raw returns the payload for storage and transport layers.
	Raw() R

	// Hash returns a hash code derived from the payload alone.
	Hash() uint64
}

// Entity is the capability every domain object satisfies.
// I is fixed by the entity's declaration and the accessor returns it by value.
type Entity[I any] interface {
	ID() I
}

// Owned is an Identifier that also declares the single entity kind it
// identifies. BelongsTo is a marker: it is never called and has no body.
type Owned[E any, R comparable] interface {
	Identifier[R]
	BelongsTo(E)
}

// Binding checks the Entity -> Identifier direction only.
//
// Instantiating Binding[E, I, R] compiles when E exposes I and I is an
// Identifier over R. It does not check that I is exclusive to E: any
// number of entity kinds may bind the same identifier type.
type Binding[E Entity[I], I Identifier[R], R comparable] struct{}

// Link checks both directions: E exposes I, and I names E as its owner.
//
// Because the owner is part of the identifier's own declaration, a second
// entity kind that reuses I fails this check.
type Link[E Entity[I], I Owned[E, R], R comparable] struct{}
