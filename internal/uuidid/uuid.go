// Package uuidid is the phantom-tagged identifier over a UUID payload.
//
// UUID[E] follows the same construction as phantom.ID[E]: a zero-sized
// marker mentioning E, a payload, and hand-written value semantics that read
// the payload only. Payloads come from github.com/google/uuid; see the idgen
// package for UUIDv7 generation.
package uuidid

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/idlink/internal/ident"
)

// UUID identifies one entity of kind E by a UUID.
type UUID[E any] struct {
	_ [0]*E

	raw uuid.UUID
}

// New wraps raw as an identifier of entity kind E. raw is not validated;
// uuid.Nil is accepted and reported by IsZero.
func New[E ident.Entity[UUID[E]]](raw uuid.UUID) UUID[E] {
	return UUID[E]{raw: raw}
}

// Parse decodes s with uuid.Parse and wraps the result.
func Parse[E ident.Entity[UUID[E]]](s string) (UUID[E], error) {
	raw, err := uuid.Parse(s)
	if err != nil {
		return UUID[E]{}, fmt.Errorf("parse %s id: %w", ident.KindName[E](), err)
	}
	return New[E](raw), nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustParse[E ident.Entity[UUID[E]]](s string) UUID[E] {
	id, err := Parse[E](s)
	if err != nil {
		panic(err)
	}
	return id
}

// BelongsTo declares E as the owning entity kind.
func (UUID[E]) BelongsTo(E) {}

// Raw returns the payload.
func (id UUID[E]) Raw() uuid.UUID { return id.raw }

// Hash returns a hash code of the payload.
func (id UUID[E]) Hash() uint64 { return ident.HashOf(id.raw) }

// Compare orders identifiers of the same kind by payload bytes.
// UUIDv7 payloads therefore sort by creation time.
func (id UUID[E]) Compare(other UUID[E]) int {
	return bytes.Compare(id.raw[:], other.raw[:])
}

// IsZero reports whether the payload is uuid.Nil.
func (id UUID[E]) IsZero() bool { return id.raw == uuid.Nil }

// String returns the hyphenated payload.
func (id UUID[E]) String() string { return id.raw.String() }

// GoString returns the debug form, e.g.
// "Identifier<app.Account>(0190b5a8-...)".
func (id UUID[E]) GoString() string {
	return fmt.Sprintf("Identifier<%s>(%s)", ident.KindName[E](), id.raw)
}
