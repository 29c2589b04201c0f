package idgen

import (
	"sync/atomic"

	"github.com/roach88/idlink/internal/ident"
	"github.com/roach88/idlink/internal/phantom"
)

// Sequence hands out strictly increasing int64 payloads.
//
// One Sequence per entity kind is the usual arrangement; nothing stops a
// Sequence from feeding several kinds, since payloads only need to be
// unique within a kind.
type Sequence struct {
	seq atomic.Int64
}

// NewSequence creates a sequence whose first payload is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// NewSequenceAt creates a sequence that resumes after start.
// The first payload is start+1.
func NewSequenceAt(start int64) *Sequence {
	s := &Sequence{}
	s.seq.Store(start)
	return s
}

// Next returns the next payload.
// Calls are linearizable - each call returns a unique, increasing value.
func (s *Sequence) Next() int64 {
	return s.seq.Add(1)
}

// Current returns the last payload handed out, or the start value.
func (s *Sequence) Current() int64 {
	return s.seq.Load()
}

// NextID mints the next identifier of kind E from s.
func NextID[E ident.Entity[phantom.ID[E]]](s *Sequence) phantom.ID[E] {
	return phantom.New[E](s.Next())
}
