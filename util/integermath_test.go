package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, Min(2, 7))
	assert.Equal(t, -3, Min(4, -3))
	assert.Equal(t, 7, Max(2, 7))
	assert.Equal(t, 4, Max(4, -3))
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 3))
	assert.True(t, InBounds(2, 3))
	assert.False(t, InBounds(3, 3))
	assert.False(t, InBounds(-1, 3))
	assert.False(t, InBounds(math.MinInt, 3))
	assert.False(t, InBounds(0, 0))
	assert.False(t, InBounds(0, -1))
}
