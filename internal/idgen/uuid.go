package idgen

import (
	"sync"

	"github.com/google/uuid"

	"github.com/roach88/idlink/internal/ident"
	"github.com/roach88/idlink/internal/uuidid"
)

// UUIDGenerator produces UUID payloads.
type UUIDGenerator interface {
	Generate() uuid.UUID
}

// UUIDv7Generator generates time-sortable UUIDv7 payloads.
//
// UUIDv7 embeds a timestamp in the most significant bits, so identifiers
// minted later compare greater (uuidid.UUID.Compare orders by bytes).
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7.
// Panics if the random source fails.
func (UUIDv7Generator) Generate() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// FixedGenerator returns predetermined payloads, in order.
//
// Used by tests and the demo command for reproducible output.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []uuid.UUID
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...uuid.UUID) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined payload.
//
// Panics once all payloads have been consumed, to surface a test that mints
// more identifiers than it planned for.
func (g *FixedGenerator) Generate() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// NextUUID mints the next identifier of kind E from g.
func NextUUID[E ident.Entity[uuidid.UUID[E]]](g UUIDGenerator) uuidid.UUID[E] {
	return uuidid.New[E](g.Generate())
}
