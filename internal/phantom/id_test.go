package phantom

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/idlink/internal/ident"
)

func TestID_HasNoFootprintBeyondPayload(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(int64(0)), unsafe.Sizeof(ID[Foo]{}))
	assert.Equal(t, unsafe.Sizeof(int64(0)), unsafe.Sizeof(ID[Bar]{}))
}

func TestID_RawRoundTrip(t *testing.T) {
	for _, raw := range []int64{0, 1, -1, 1 << 62} {
		assert.Equal(t, raw, New[Foo](raw).Raw())
	}
}

func TestID_Reflexive(t *testing.T) {
	x := New[Foo](1)
	assert.True(t, x == x)
	assert.True(t, x.Equal(x))
}

func TestID_DistinctPayloadsUnequal(t *testing.T) {
	assert.NotEqual(t, New[Foo](1), New[Foo](2))
	assert.False(t, New[Foo](1).Equal(New[Foo](2)))
}

func TestID_EqualIdentifiersHashEqual(t *testing.T) {
	a, b := New[Foo](42), New[Foo](42)
	require.True(t, a == b)
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestID_HashReadsPayloadOnly(t *testing.T) {
	// Different kinds, same payload: the marker plays no part.
	assert.Equal(t, New[Foo](5).Hash(), New[Bar](5).Hash())
	assert.Equal(t, ident.HashOf(int64(5)), New[Foo](5).Hash())
}

func TestID_DuplicationLaw(t *testing.T) {
	original := New[Foo](7)
	duplicate := original

	assert.True(t, duplicate == original)
	assert.Equal(t, original.Hash(), duplicate.Hash())
	assert.Equal(t, original.GoString(), duplicate.GoString())

	// Using the original after copying it still works: nothing was moved.
	assert.Equal(t, int64(7), original.Raw())
}

func TestID_Compare(t *testing.T) {
	assert.Equal(t, -1, New[Foo](1).Compare(New[Foo](2)))
	assert.Equal(t, 0, New[Foo](2).Compare(New[Foo](2)))
	assert.Equal(t, 1, New[Foo](3).Compare(New[Foo](2)))

	ids := []ID[Foo]{New[Foo](3), New[Foo](1), New[Foo](2)}
	ident.Sort(ids)
	assert.Equal(t, []ID[Foo]{New[Foo](1), New[Foo](2), New[Foo](3)}, ids)
}

func TestID_IsZero(t *testing.T) {
	assert.True(t, ID[Foo]{}.IsZero())
	assert.True(t, New[Foo](0).IsZero())
	assert.False(t, New[Foo](1).IsZero())
}

func TestID_Formatting(t *testing.T) {
	id := New[Foo](1)
	assert.Equal(t, "1", id.String())
	assert.Equal(t, "1", fmt.Sprintf("%v", id))
	assert.Equal(t, "1", fmt.Sprintf("%s", id))
	assert.Equal(t, "Identifier<phantom.Foo>(1)", fmt.Sprintf("%#v", id))
	assert.Equal(t, "Identifier<phantom.Bar>(1)", New[Bar](1).GoString())
}

func TestID_DebugFormsGolden(t *testing.T) {
	var b strings.Builder
	for _, raw := range []int64{0, 1, 42, -7} {
		fmt.Fprintf(&b, "%#v\n", New[Foo](raw))
		fmt.Fprintf(&b, "%#v\n", New[Bar](raw))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "debug_forms", []byte(b.String()))
}

// Scenario 2: identifiers of two kinds built from the same payload exist
// independently. Substitution between them is rejected by the compiler;
// see the typecheck package tests.
func TestScenario_SamePayloadTwoKinds(t *testing.T) {
	fooID := New[Foo](1)
	barID := New[Bar](1)

	foo := NewFoo(fooID, "foo")
	bar := NewBar(barID, "red")

	assert.Equal(t, fooID, foo.ID())
	assert.Equal(t, barID, bar.ID())
	assert.Equal(t, fooID.Raw(), barID.Raw())

	// Boxed into interfaces, the dynamic types differ, so even a runtime
	// comparison does not confuse them.
	var a, b any = fooID, barID
	assert.False(t, a == b)
}

// Scenario 3: identifiers as map keys.
func TestScenario_MapLookup(t *testing.T) {
	names := map[ID[Foo]]string{}
	for _, raw := range []int64{1, 2, 3} {
		names[New[Foo](raw)] = fmt.Sprintf("foo-%d", raw)
	}

	for _, raw := range []int64{1, 2, 3} {
		name, ok := names[New[Foo](raw)]
		assert.True(t, ok, "raw %d must be present", raw)
		assert.Equal(t, fmt.Sprintf("foo-%d", raw), name)
	}

	_, ok := names[New[Foo](4)]
	assert.False(t, ok, "raw 4 must be absent")
}

func TestID_NonComparableEntityStillKeys(t *testing.T) {
	bars := map[ID[Bar]]Bar{}
	bar := NewBar(New[Bar](9), "a", "b")
	bars[bar.ID()] = bar

	got, ok := bars[New[Bar](9)]
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got.Tags())
}

func TestID_SharedAcrossGoroutines(t *testing.T) {
	id := New[Foo](11)
	want := id.Hash()

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if id != New[Foo](11) || id.Hash() != want {
				errs <- id.GoString()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("identifier changed under concurrent use: %s", e)
	}
}
