// Package rledelta implements the second stage of the pxc codec pipeline.
//
// It represents a byte stream as an initial value followed by runs of
// equal consecutive deltas (computed with 8-bit wrap-around arithmetic,
// via internal/predictor). This compresses both flat runs (delta 0) and
// linear gradients (any constant delta) to one (count, delta) pair each.
package rledelta

import (
	"fmt"

	"github.com/pxcfmt/go-pxc/internal/predictor"
)

// maxRunLength is the largest count a single (count, delta) pair can
// encode; longer zero-delta runs split into successive pairs.
const maxRunLength = 255

// ErrEmptyInput is returned by Encode on an empty input, and by Decode
// when the encoded stream is empty.
var ErrEmptyInput = fmt.Errorf("rledelta: empty input")

// InvalidInputLengthError is returned by Decode when the encoded stream's
// length isn't of the form 1+2k (an odd number of bytes, at least 3).
type InvalidInputLengthError struct {
	Length int
}

func (e *InvalidInputLengthError) Error() string {
	return fmt.Sprintf("rledelta: invalid input length %d, want an odd length of at least 3", e.Length)
}

// ErrSingleByteInput is returned by Encode on a 1-byte input. The source
// algorithm this stage is ported from reads data[1] unconditionally and
// is undefined on single-byte streams; emitting just [data[0]] would
// satisfy the "odd length" shape but produce a 1-byte stream that Decode
// itself rejects via InvalidInputLengthError (it requires at least 3
// bytes). Rather than emit output Decode can't read back, Encode rejects
// the input explicitly. Callers with single-pixel images must special
// case them before reaching this stage.
var ErrSingleByteInput = fmt.Errorf("rledelta: single-byte input is undefined for this encoding")

// Encode compresses data into the initial-value-plus-runs representation.
// It returns ErrEmptyInput if data is empty and ErrSingleByteInput if
// data has exactly one byte.
func Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data) == 1 {
		return nil, ErrSingleByteInput
	}

	encoded := make([]byte, 0, len(data)/2+1)
	encoded = append(encoded, data[0])

	deltas := predictor.Deltas(data, nil)

	count := 1
	prevDelta := deltas[0]
	for i := 1; i < len(deltas); i++ {
		cur := deltas[i]
		if cur == prevDelta && count < maxRunLength {
			count++
			continue
		}
		encoded = flushRun(encoded, count, prevDelta)
		prevDelta = cur
		count = 1
	}
	encoded = flushRun(encoded, count, prevDelta)

	return encoded, nil
}

// flushRun appends one or more (count, delta) pairs for a run. Zero-delta
// runs longer than 255 split into successive (255, 0) pairs followed by a
// trailing remainder pair; any other run fits the loop invariant (count
// never exceeds 255) and emits a single pair.
func flushRun(encoded []byte, count int, delta byte) []byte {
	if delta == 0 {
		for count > maxRunLength {
			encoded = append(encoded, maxRunLength, 0)
			count -= maxRunLength
		}
	}
	return append(encoded, byte(count), delta)
}

// Decode reverses Encode. It returns ErrEmptyInput on an empty stream and
// *InvalidInputLengthError if the stream's length isn't 1+2k for some
// k >= 1.
func Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data) < 3 || len(data)%2 == 0 {
		return nil, &InvalidInputLengthError{Length: len(data)}
	}

	deltas := make([]byte, 0, len(data)*2)
	for i := 1; i < len(data); i += 2 {
		count := data[i]
		delta := data[i+1]
		for c := 0; c < int(count); c++ {
			deltas = append(deltas, delta)
		}
	}

	return predictor.Reconstruct(data[0], deltas, make([]byte, 0, len(deltas)+1)), nil
}
