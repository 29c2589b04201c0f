package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashOf_EqualPayloadsHashEqual(t *testing.T) {
	assert.Equal(t, HashOf(int64(42)), HashOf(int64(42)))
	assert.Equal(t, HashOf("a"), HashOf("a"))
}

func TestHashOf_DistinctPayloads(t *testing.T) {
	// Collisions are possible in principle; for small distinct ints they do
	// not happen with maphash.
	assert.NotEqual(t, HashOf(int64(1)), HashOf(int64(2)))
}

func TestCompareRaw(t *testing.T) {
	assert.Equal(t, -1, CompareRaw(int64(1), int64(2)))
	assert.Equal(t, 0, CompareRaw(int64(2), int64(2)))
	assert.Equal(t, 1, CompareRaw(int64(3), int64(2)))
}

type ordinal int

func (o ordinal) Compare(other ordinal) int { return CompareRaw(o, other) }

func TestSort(t *testing.T) {
	ids := []ordinal{3, 1, 2}
	Sort(ids)
	assert.Equal(t, []ordinal{1, 2, 3}, ids)
}

type widget struct{}

func TestKindName(t *testing.T) {
	assert.Equal(t, "ident.widget", KindName[widget]())
	assert.Equal(t, "int64", KindName[int64]())
}
