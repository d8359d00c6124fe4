package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_FIFOOnEqualPriority(t *testing.T) {
	fr := newFrontier()
	fr.push(10, 5)
	fr.push(11, 3)
	fr.push(12, 5)
	fr.push(13, 3)

	var order []uint32
	for fr.len() > 0 {
		it, ok := fr.pop()
		require.True(t, ok)
		order = append(order, it.idx)
	}
	assert.Equal(t, []uint32{11, 13, 10, 12}, order)
}

func TestFrontier_RemoveAndRequeue(t *testing.T) {
	fr := newFrontier()
	a := fr.push(1, 7)
	fr.push(2, 4)
	fr.push(3, 4)

	// Decrease-key of node 1 to f=4: it queues behind 2 and 3.
	fr.remove(7, a)
	fr.push(1, 4)
	require.Equal(t, 3, fr.len())

	var order []uint32
	for fr.len() > 0 {
		it, _ := fr.pop()
		order = append(order, it.idx)
	}
	assert.Equal(t, []uint32{2, 3, 1}, order)

	_, ok := fr.pop()
	assert.False(t, ok)
}
