package testutil

import (
	"fmt"

	"github.com/google/uuid"
)

// SeqUUID returns a readable, deterministic UUID whose last group is n,
// e.g. SeqUUID(1) is 00000000-0000-0000-0000-000000000001.
func SeqUUID(n uint32) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012x", n))
}

// SeqUUIDs returns SeqUUID(1) through SeqUUID(n).
func SeqUUIDs(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = SeqUUID(uint32(i + 1))
	}
	return out
}
