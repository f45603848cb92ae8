package guts

import "iter"

// All returns an iterator over index-element pairs in index order. The
// iterator reads the elements as they were when All was called and may be
// ranged over any number of times.
func (a Array[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.Size(); i++ {
			if !yield(i, a.elems[i]) {
				return
			}
		}
	}
}

// Values is like All but yields only the elements.
func (a Array[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.Size(); i++ {
			if !yield(a.elems[i]) {
				return
			}
		}
	}
}
