package util

// Max returns the maximum value of inputs x, y
func Max(x int, y int) int {
	if x > y {
		return x
	}
	return y
}

// Min returns the minimum value of inputs x, y
func Min(x int, y int) int {
	if x < y {
		return x
	}
	return y
}

// InBounds reports whether idx is a valid position in a sequence of n elements, i.e. 0 <= idx < n
func InBounds(idx int, n int) bool {
	// a single unsigned comparison also rejects negative indices
	return uint(idx) < uint(Max(n, 0))
}
