package bidirectional

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

var (
	_ ident.Link[Foo, FooID, int64]
	_ ident.Link[Bar, BarID, int64]
)
