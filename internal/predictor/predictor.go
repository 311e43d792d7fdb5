// Package predictor implements the horizontal differencing step used by
// the rledelta stage.
//
// The predictor converts a byte stream into the sequence of differences
// between consecutive bytes, wrapping modulo 256. Flat runs and linear
// gradients collapse to long runs of a single delta value, which is what
// makes the following run-length pass effective.
package predictor

// Deltas computes the wrap-around difference between each pair of
// consecutive bytes in data and appends it to dst, returning the grown
// slice. len(result) == len(data)-1. Deltas does not look at data[0]
// beyond using it as the first predecessor; callers that need the
// initial value must carry it separately.
func Deltas(data []byte, dst []byte) []byte {
	if len(data) < 2 {
		return dst
	}
	for i := 0; i < len(data)-1; i++ {
		dst = append(dst, data[i+1]-data[i])
	}
	return dst
}

// Reconstruct rebuilds the original byte stream from an initial value and
// its deltas, appending to dst. len(result) == len(deltas)+1.
func Reconstruct(initial byte, deltas []byte, dst []byte) []byte {
	dst = append(dst, initial)
	prev := initial
	for _, d := range deltas {
		prev = prev + d
		dst = append(dst, prev)
	}
	return dst
}
