package guts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllInIndexOrder(t *testing.T) {
	a := Of[string]([3]string{"x", "y", "z"})

	var idxs []int
	var vals []string
	for i, v := range a.All() {
		idxs = append(idxs, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idxs)
	assert.Equal(t, []string{"x", "y", "z"}, vals)
}

func TestIterationDoesNotMutate(t *testing.T) {
	a := Of[int]([4]int{1, 2, 3, 4})
	before := a
	for range a.All() {
	}
	for range a.Values() {
	}
	assert.True(t, Equal(before, a))
}

func TestIterationStopsEarly(t *testing.T) {
	a := Of[int]([4]int{1, 2, 3, 4})
	var seen []int
	for v := range a.Values() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)

	count := 0
	for i := range a.All() {
		if i == 1 {
			break
		}
		count++
	}
	assert.Equal(t, 1, count)
}

func TestIteratorSnapshot(t *testing.T) {
	a := Of[int]([3]int{1, 2, 3})
	seq := a.Values()
	a.Set(0, 9)

	var first, second []int
	for v := range seq {
		first = append(first, v)
	}
	for v := range seq {
		second = append(second, v)
	}
	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, first, second)
}

func TestIterateEmpty(t *testing.T) {
	var e Array[int, [0]int]
	for range e.All() {
		t.Fatal("empty array yielded an element")
	}
}
