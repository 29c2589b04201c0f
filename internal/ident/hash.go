package ident

import (
	"cmp"
	"hash/maphash"
	"slices"
)

// seed is fixed for the life of the process, so equal payloads hash equal
// for as long as any identifier can be compared. Hash codes are not stable
// across processes and must not be persisted.
var seed = maphash.MakeSeed()

// HashOf derives a hash code from a raw payload.
// Identifier Hash methods delegate here with their payload and nothing else.
func HashOf[R comparable](raw R) uint64 {
	return maphash.Comparable(seed, raw)
}

// Comparer is implemented by identifiers with a total order on their payload.
type Comparer[I any] interface {
	Compare(other I) int
}

// Sort orders ids in place by payload.
func Sort[I Comparer[I]](ids []I) {
	slices.SortFunc(ids, func(a, b I) int {
		return a.Compare(b)
	})
}

// CompareRaw orders two ordered payloads.
func CompareRaw[R cmp.Ordered](a, b R) int {
	return cmp.Compare(a, b)
}
