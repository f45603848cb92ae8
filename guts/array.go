// Package guts holds small utility types shared across the library.
//
// Array is the fixed-size array type used by this codebase. Code should name
// guts.Array instead of spelling the underlying Go array, so the representation
// can change in one place.
package guts

//go:generate go run ../gen

import (
	"fmt"

	"github.com/filecoin-project/go-c10/util"
	"golang.org/x/xerrors"
)

// Array is a sequence of exactly N elements of T, where A is the Go array
// type [N]T. Its storage is a single A held inline, so an Array has the
// layout, copy semantics and comparability of [N]T. The zero value holds N
// zero elements.
//
// Array is not safe for concurrent mutation.
type Array[T any, A Storage[T]] struct {
	elems A
}

// Of wraps elems. T is usually given and A inferred: Of[int]([3]int{1, 2, 3}).
func Of[T any, A Storage[T]](elems A) Array[T, A] {
	return Array[T, A]{elems: elems}
}

// FromSlice copies s into a new Array. s must hold exactly N elements.
func FromSlice[T any, A Storage[T]](s []T) (Array[T, A], error) {
	var a Array[T, A]
	if len(s) != a.Size() {
		return a, xerrors.Errorf("slice of %d elements into array of %d: %w", len(s), a.Size(), ErrLengthMismatch)
	}
	a.CopyFrom(s)
	return a, nil
}

// Size returns N.
func (a Array[T, A]) Size() int {
	return len(a.elems)
}

// Get returns the element at idx without validating it. An index outside
// [0, N) panics.
func (a Array[T, A]) Get(idx int) T {
	return a.elems[idx]
}

// Set stores v at idx without validating it. An index outside [0, N) panics.
func (a *Array[T, A]) Set(idx int, v T) {
	a.elems[idx] = v
}

// At returns the element at idx, or an *OutOfRangeError if idx is not in [0, N).
func (a Array[T, A]) At(idx int) (T, error) {
	if err := checkIndex(idx, a.Size()); err != nil {
		var zero T
		return zero, err
	}
	return a.elems[idx], nil
}

// SetAt stores v at idx, or returns an *OutOfRangeError if idx is not in [0, N).
func (a *Array[T, A]) SetAt(idx int, v T) error {
	if err := checkIndex(idx, a.Size()); err != nil {
		return err
	}
	a.elems[idx] = v
	return nil
}

// Raw returns the underlying Go array.
func (a Array[T, A]) Raw() A {
	return a.elems
}

// Clone returns an independent copy of a. Elements are copied by assignment,
// so pointers held in T are shared.
func (a Array[T, A]) Clone() Array[T, A] {
	return a
}

// Slice returns the elements in a newly allocated slice.
func (a Array[T, A]) Slice() []T {
	res := make([]T, a.Size())
	for i := range res {
		res[i] = a.elems[i]
	}
	return res
}

// CopyFrom copies min(len(s), N) elements from s and returns how many were copied.
func (a *Array[T, A]) CopyFrom(s []T) int {
	n := util.Min(len(s), a.Size())
	for i := 0; i < n; i++ {
		a.elems[i] = s[i]
	}
	return n
}

func (a *Array[T, A]) Fill(v T) {
	for i := 0; i < a.Size(); i++ {
		a.elems[i] = v
	}
}

// Swap exchanges the elements at i and j. Indices are not validated.
func (a *Array[T, A]) Swap(i int, j int) {
	a.elems[i], a.elems[j] = a.elems[j], a.elems[i]
}

// EqualFunc reports whether a and b hold pairwise equal elements under eq.
func (a Array[T, A]) EqualFunc(b Array[T, A], eq func(T, T) bool) bool {
	for i := 0; i < a.Size(); i++ {
		if !eq(a.elems[i], b.elems[i]) {
			return false
		}
	}
	return true
}

func (a Array[T, A]) String() string {
	return fmt.Sprint(a.elems)
}

// Equal reports whether a and b hold pairwise equal elements.
func Equal[T comparable, A Storage[T]](a, b Array[T, A]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}
