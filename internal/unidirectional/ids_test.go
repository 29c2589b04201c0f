package unidirectional

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFooID_ValueSemantics(t *testing.T) {
	x := NewFooID(1)
	dup := x

	assert.True(t, x == dup)
	assert.Equal(t, x.Hash(), dup.Hash())
	assert.NotEqual(t, NewFooID(1), NewFooID(2))
	assert.Equal(t, int64(1), x.Raw())
}

func TestFooID_Formatting(t *testing.T) {
	assert.Equal(t, "1", NewFooID(1).String())
	assert.Equal(t, "FooID(1)", fmt.Sprintf("%#v", NewFooID(1)))
	assert.Equal(t, "BarID(2)", fmt.Sprintf("%#v", NewBarID(2)))
}

func TestBarID_CompareAndZero(t *testing.T) {
	assert.Equal(t, -1, NewBarID(1).Compare(NewBarID(2)))
	assert.True(t, BarID{}.IsZero())
	assert.False(t, NewBarID(3).IsZero())
}

func TestEntities_AccessorStability(t *testing.T) {
	foo := NewFoo(NewFooID(1), "foo")
	bar := NewBar(NewBarID(1), "bar")

	assert.Equal(t, NewFooID(1), foo.ID())
	assert.Equal(t, NewBarID(1), bar.ID())
	assert.Equal(t, "foo", foo.Name())
	assert.Equal(t, "bar", bar.Name())
}

// The documented loophole at runtime: Foo and Baz share FooID, so a table of
// Baz values happily answers a lookup made with a Foo's identifier.
func TestBaz_SharesFooIDWithFoo(t *testing.T) {
	foo := NewFoo(NewFooID(1), "foo")
	bazByID := map[FooID]Baz{}
	baz := NewBaz(NewFooID(1))
	bazByID[baz.ID()] = baz

	got, ok := bazByID[foo.ID()]
	assert.True(t, ok, "lookup with a Foo's id finds a Baz; the variant does not prevent this")
	assert.Equal(t, baz, got)
}

func TestScenario_MapLookup(t *testing.T) {
	seen := map[FooID]bool{}
	for _, raw := range []int64{1, 2, 3} {
		seen[NewFooID(raw)] = true
	}
	for _, raw := range []int64{1, 2, 3} {
		assert.True(t, seen[NewFooID(raw)])
	}
	_, ok := seen[NewFooID(4)]
	assert.False(t, ok)
}
