package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/roach88/idlink/internal/testutil"
	"github.com/roach88/idlink/internal/uuidid"
)

type device struct{ id uuidid.UUID[device] }

func (d device) ID() uuidid.UUID[device] { return d.id }

func TestUUIDv7Generator_Version(t *testing.T) {
	id := UUIDv7Generator{}.Generate()
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestUUIDv7Generator_Sortable(t *testing.T) {
	var gen UUIDv7Generator
	first := NextUUID[device](gen)
	second := NextUUID[device](gen)

	assert.NotEqual(t, first, second)
	assert.Equal(t, -1, first.Compare(second), "later UUIDv7 payloads compare greater")
}

func TestFixedGenerator_InOrder(t *testing.T) {
	a, b := testutil.SeqUUID(10), testutil.SeqUUID(11)
	gen := NewFixedGenerator(a, b)

	assert.Equal(t, uuidid.New[device](a), NextUUID[device](gen))
	assert.Equal(t, uuidid.New[device](b), NextUUID[device](gen))
	assert.Panics(t, func() { gen.Generate() })
}
