package uuidid

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/idlink/internal/ident"
)

type account struct{ id UUID[account] }

func (a account) ID() UUID[account] { return a.id }

type session struct{ id UUID[session] }

func (s session) ID() UUID[session] { return s.id }

var (
	_ ident.Link[account, UUID[account], uuid.UUID]
	_ ident.Link[session, UUID[session], uuid.UUID]
)

const (
	firstRaw  = "0190b5a8-0000-7000-8000-000000000001"
	secondRaw = "0190b5a8-0000-7000-8000-000000000002"
)

func TestUUID_Size(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(uuid.UUID{}), unsafe.Sizeof(UUID[account]{}))
}

func TestUUID_ParseRoundTrip(t *testing.T) {
	id, err := Parse[account](firstRaw)
	require.NoError(t, err)
	assert.Equal(t, firstRaw, id.String())
	assert.Equal(t, uuid.MustParse(firstRaw), id.Raw())
}

func TestUUID_ParseError(t *testing.T) {
	_, err := Parse[account]("not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse uuidid.account id")
}

func TestUUID_MustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse[account]("nope") })
}

func TestUUID_ValueSemantics(t *testing.T) {
	a := MustParse[account](firstRaw)
	dup := a

	assert.True(t, a == dup)
	assert.Equal(t, a.Hash(), dup.Hash())
	assert.NotEqual(t, a, MustParse[account](secondRaw))
	assert.Equal(t, a.Hash(), MustParse[session](firstRaw).Hash(), "hash reads payload only")
}

func TestUUID_Compare(t *testing.T) {
	a := MustParse[account](firstRaw)
	b := MustParse[account](secondRaw)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestUUID_IsZero(t *testing.T) {
	assert.True(t, New[account](uuid.Nil).IsZero())
	assert.True(t, UUID[account]{}.IsZero())
	assert.False(t, MustParse[account](firstRaw).IsZero())
}

func TestUUID_GoString(t *testing.T) {
	id := MustParse[session](firstRaw)
	assert.Equal(t, "Identifier<uuidid.session>("+firstRaw+")", fmt.Sprintf("%#v", id))
}

func TestUUID_MapLookup(t *testing.T) {
	byID := map[UUID[account]]account{}
	a := account{id: MustParse[account](firstRaw)}
	byID[a.ID()] = a

	_, ok := byID[MustParse[account](firstRaw)]
	assert.True(t, ok)
	_, ok = byID[MustParse[account](secondRaw)]
	assert.False(t, ok)
}
