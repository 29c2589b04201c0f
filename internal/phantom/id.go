package phantom

import (
	"fmt"

	"github.com/roach88/idlink/internal/ident"
)

// ID identifies one entity of kind E.
//
// The zero value is a valid ID[E] with payload 0. IDs are built with New,
// which enforces that E declares ID[E] as its identifier.
type ID[E any] struct {
	// Phantom marker. Zero-length, so it occupies no memory, and a pointer
	// element type keeps ID comparable whatever E is.
	_ [0]*E

	raw int64
}

// New wraps raw as an identifier of entity kind E. raw is not validated.
func New[E ident.Entity[ID[E]]](raw int64) ID[E] {
	return ID[E]{raw: raw}
}

// BelongsTo declares E as the owning entity kind.
func (ID[E]) BelongsTo(E) {}

// Raw returns the payload.
func (id ID[E]) Raw() int64 {
	return id.raw
}

// Hash returns a hash code of the payload.
func (id ID[E]) Hash() uint64 {
	return ident.HashOf(id.raw)
}

// Equal reports whether id and other carry the same payload.
// It is the same as id == other.
func (id ID[E]) Equal(other ID[E]) bool {
	return id.raw == other.raw
}

// Compare orders identifiers of the same kind by payload.
func (id ID[E]) Compare(other ID[E]) int {
	return ident.CompareRaw(id.raw, other.raw)
}

// IsZero reports whether the payload is 0.
func (id ID[E]) IsZero() bool {
	return id.raw == 0
}

// String returns the payload in decimal.
func (id ID[E]) String() string {
	return fmt.Sprintf("%d", id.raw)
}

// GoString returns the debug form, e.g. "Identifier<phantom.Foo>(1)".
func (id ID[E]) GoString() string {
	return fmt.Sprintf("Identifier<%s>(%d)", ident.KindName[E](), id.raw)
}
