package unidirectional

import (
	"fmt"

	"github.com/roach88/idlink/internal/ident"
)

// FooID identifies a Foo.
type FooID struct {
	raw int64
}

// NewFooID wraps raw as a FooID. raw is not validated.
func NewFooID(raw int64) FooID {
	return FooID{raw: raw}
}

func (id FooID) Raw() int64              { return id.raw }
func (id FooID) Hash() uint64            { return ident.HashOf(id.raw) }
func (id FooID) IsZero() bool            { return id.raw == 0 }
func (id FooID) Compare(other FooID) int { return ident.CompareRaw(id.raw, other.raw) }
func (id FooID) String() string          { return fmt.Sprintf("%d", id.raw) }
func (id FooID) GoString() string        { return fmt.Sprintf("FooID(%d)", id.raw) }

// BarID identifies a Bar.
type BarID struct {
	raw int64
}

// NewBarID wraps raw as a BarID. raw is not validated.
func NewBarID(raw int64) BarID {
	return BarID{raw: raw}
}

func (id BarID) Raw() int64              { return id.raw }
func (id BarID) Hash() uint64            { return ident.HashOf(id.raw) }
func (id BarID) IsZero() bool            { return id.raw == 0 }
func (id BarID) Compare(other BarID) int { return ident.CompareRaw(id.raw, other.raw) }
func (id BarID) String() string          { return fmt.Sprintf("%d", id.raw) }
func (id BarID) GoString() string        { return fmt.Sprintf("BarID(%d)", id.raw) }
