package phantom

import "github.com/roach88/idlink/internal/ident"

// Foo is an entity identified by ID[Foo].
type Foo struct {
	id   ID[Foo]
	name string
}

// NewFoo creates a Foo. The identifier is fixed for the Foo's lifetime.
func NewFoo(id ID[Foo], name string) Foo {
	return Foo{id: id, name: name}
}

func (f Foo) ID() ID[Foo]  { return f.id }
func (f Foo) Name() string { return f.name }

// Bar is an entity identified by ID[Bar].
//
// Bar holds a slice, so Bar itself is not comparable. ID[Bar] still is.
type Bar struct {
	id   ID[Bar]
	tags []string
}

// NewBar creates a Bar. tags is copied.
func NewBar(id ID[Bar], tags ...string) Bar {
	return Bar{id: id, tags: append([]string(nil), tags...)}
}

func (b Bar) ID() ID[Bar] { return b.id }

// Tags returns a copy of b's tags.
func (b Bar) Tags() []string {
	return append([]string(nil), b.tags...)
}

var (
	_ ident.Link[Foo, ID[Foo], int64]
	_ ident.Link[Bar, ID[Bar], int64]
)
