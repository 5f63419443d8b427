package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazekit/mazekit/unionfind"
)

func TestDSU_SingletonsAtStart(t *testing.T) {
	d := unionfind.New(5)
	require.Equal(t, 5, d.Len())

	for i := 0; i < 5; i++ {
		assert.Equal(t, i, d.Find(i), "fresh element is its own root")
	}
	assert.False(t, d.Connected(0, 4))
}

func TestDSU_Union(t *testing.T) {
	d := unionfind.New(6)

	assert.True(t, d.Union(0, 1), "first union of distinct sets merges")
	assert.False(t, d.Union(0, 1), "repeated union is a no-op")
	assert.True(t, d.Connected(0, 1))

	assert.True(t, d.Union(2, 3))
	assert.True(t, d.Union(1, 3))
	assert.True(t, d.Connected(0, 2), "connectivity is transitive")
	assert.False(t, d.Connected(0, 5))
}

func TestDSU_FindIsCanonical(t *testing.T) {
	d := unionfind.New(8)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(2, 3)

	root := d.Find(0)
	for i := 1; i <= 3; i++ {
		assert.Equal(t, root, d.Find(i), "all merged elements share one root")
	}
}

func TestDSU_ChainCompression(t *testing.T) {
	// a long chain of unions must still resolve every element to one root
	const n = 1000
	d := unionfind.New(n)
	for i := 1; i < n; i++ {
		d.Union(i-1, i)
	}

	root := d.Find(0)
	for i := 0; i < n; i++ {
		require.Equal(t, root, d.Find(i))
	}
	assert.True(t, d.Connected(0, n-1))
}
