package tensor

import "iter"

// Iterator walks a tensor's linear indices 0 .. NumElements()-1.
//
// Example:
//
//	it := t.Iterator()
//	for it.Begin(); !it.Done(); it.Next() {
//	    b, _ := it.Element()
//	    ...
//	}
type Iterator struct {
	t     *Tensor
	index uint64
	total uint64
}

// Iterator returns an iterator positioned at index 0.
func (t *Tensor) Iterator() *Iterator {
	return &Iterator{t: t, total: t.NumElements()}
}

// Begin rewinds to index 0. The sequence can be replayed any number of times.
func (it *Iterator) Begin() *Iterator {
	it.index = 0
	it.total = it.t.NumElements()
	return it
}

// End returns the sentinel index, equal to NumElements().
func (it *Iterator) End() uint64 { return it.total }

// Index returns the current linear index.
func (it *Iterator) Index() uint64 { return it.index }

// Done reports whether the iterator reached the sentinel.
func (it *Iterator) Done() bool { return it.index >= it.total }

// Next advances by one element. It saturates at End().
func (it *Iterator) Next() {
	if it.index < it.total {
		it.index++
	}
}

// Element returns the bytes at the current linear index.
func (it *Iterator) Element() ([]byte, error) {
	return it.t.ElementAt(it.index)
}

// Coordinates recovers the coordinate vector of the current index.
func (it *Iterator) Coordinates() ([]uint64, error) {
	return it.t.Coordinates(it.index)
}

// All yields every linear index with its element bytes. Iteration stops at
// the first addressing error, which can only happen when no data is bound or
// the strides overlap so that the footprint is smaller than the element count.
func (t *Tensor) All() iter.Seq2[uint64, []byte] {
	return func(yield func(uint64, []byte) bool) {
		it := t.Iterator()
		for it.Begin(); !it.Done(); it.Next() {
			b, err := it.Element()
			if err != nil || !yield(it.Index(), b) {
				return
			}
		}
	}
}

// Coords yields every linear index with its recovered coordinates.
func (t *Tensor) Coords() iter.Seq2[uint64, []uint64] {
	return func(yield func(uint64, []uint64) bool) {
		it := t.Iterator()
		for it.Begin(); !it.Done(); it.Next() {
			c, err := it.Coordinates()
			if err != nil || !yield(it.Index(), c) {
				return
			}
		}
	}
}
