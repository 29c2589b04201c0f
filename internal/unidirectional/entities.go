package unidirectional

import "github.com/roach88/idlink/internal/ident"

// Foo is an entity identified by FooID.
type Foo struct {
	id   FooID
	name string
}

// NewFoo creates a Foo. The identifier is fixed for the Foo's lifetime.
func NewFoo(id FooID, name string) Foo {
	return Foo{id: id, name: name}
}

func (f Foo) ID() FooID    { return f.id }
func (f Foo) Name() string { return f.name }

// Bar is an entity identified by BarID.
type Bar struct {
	id   BarID
	name string
}

// NewBar creates a Bar. The identifier is fixed for the Bar's lifetime.
func NewBar(id BarID, name string) Bar {
	return Bar{id: id, name: name}
}

func (b Bar) ID() BarID    { return b.id }
func (b Bar) Name() string { return b.name }

// Baz reuses FooID as its identifier. Foo and Baz now share an identifier
// type, so a Foo's id can be used to look up a Baz. See the package docs.
type Baz struct {
	id FooID
}

// NewBaz creates a Baz identified by a FooID.
func NewBaz(id FooID) Baz {
	return Baz{id: id}
}

func (b Baz) ID() FooID { return b.id }

var (
	_ ident.Binding[Foo, FooID, int64]
	_ ident.Binding[Bar, BarID, int64]
	_ ident.Binding[Baz, FooID, int64]
)
