package tensor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorVisitsEveryIndex(t *testing.T) {
	tn := mustNew(t, Extents{10, 10}, Strides{1, 10}, 2, Int32)
	require.NoError(t, tn.InitData(sequentialInt32(100)))

	it := tn.Iterator()
	assert.Equal(t, uint64(100), it.End())

	var seen uint64
	for it.Begin(); !it.Done(); it.Next() {
		b, err := it.Element()
		require.NoError(t, err)
		assert.Equal(t, uint32(it.Index()), binary.LittleEndian.Uint32(b))
		seen++
	}
	assert.Equal(t, uint64(100), seen)
	assert.Equal(t, it.End(), it.Index())
}

func TestIteratorSaturatesAtEnd(t *testing.T) {
	tn := mustNew(t, Extents{3}, Strides{1}, 1, Int8)
	tn.Allocate()

	it := tn.Iterator()
	for i := 0; i < 10; i++ {
		it.Next()
	}
	assert.Equal(t, uint64(3), it.Index())
	assert.True(t, it.Done())

	_, err := it.Element()
	assert.ErrorIs(t, err, ErrContractViolation)
}

func TestIteratorRestart(t *testing.T) {
	tn := mustNew(t, Extents{2, 2}, Strides{1, 2}, 2, Int8)
	tn.Allocate()

	count := func() int {
		n := 0
		it := tn.Iterator()
		for it.Begin(); !it.Done(); it.Next() {
			n++
		}
		return n
	}

	it := tn.Iterator()
	it.Next()
	it.Next()
	assert.Equal(t, uint64(0), it.Begin().Index())
	assert.Equal(t, 4, count())
	assert.Equal(t, 4, count())
}

func TestIteratorCoordinates(t *testing.T) {
	tn := mustNew(t, Extents{2, 3}, Strides{3, 1}, 2, Float32)

	want := [][]uint64{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	it := tn.Iterator()
	for it.Begin(); !it.Done(); it.Next() {
		c, err := it.Coordinates()
		require.NoError(t, err)
		assert.Equal(t, want[it.Index()], c)
	}

	// Coordinates at the sentinel are out of range.
	_, err := it.Coordinates()
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestIteratorEmptyTensor(t *testing.T) {
	tn := mustNew(t, Extents{0, 4}, Strides{4, 1}, 2, Float32)

	it := tn.Iterator()
	assert.True(t, it.Begin().Done())
	assert.Equal(t, uint64(0), it.End())
}

func TestAllAndCoords(t *testing.T) {
	tn := mustNew(t, Extents{4, 5}, Strides{1, 4}, 2, Int32)
	require.NoError(t, tn.InitData(sequentialInt32(20)))

	var n uint64
	for i, b := range tn.All() {
		assert.Equal(t, n, i)
		assert.Equal(t, uint32(i), binary.LittleEndian.Uint32(b))
		n++
	}
	assert.Equal(t, uint64(20), n)

	for i, c := range tn.Coords() {
		b, err := tn.ElementAtCoords(c)
		require.NoError(t, err)
		assert.Equal(t, uint32(i), binary.LittleEndian.Uint32(b))
	}

	// Early break stops iteration.
	n = 0
	for range tn.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, uint64(3), n)
}

func TestAllWithoutDataYieldsNothing(t *testing.T) {
	tn := mustNew(t, Extents{4}, Strides{1}, 1, Int32)
	for range tn.All() {
		t.Fatal("unexpected element")
	}
}
