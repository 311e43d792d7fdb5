// Package lzw implements the third stage of the pxc codec pipeline: a
// byte-level LZW variant with fixed 16-bit little-endian codes.
//
// Codes 0..255 are the literal bytes, seeded into the dictionary up
// front. Codes 256..65534 are compound entries assigned in encounter
// order as the stream is processed. Code 65535 is never assigned: once
// codes 0..65534 are all in use, adding one more entry fails with
// ErrDictionaryOverflow.
//
// The encoder looks up "does sequence S exist in the dictionary" by
// walking a trie keyed by (code, next byte) -> child code, rather than
// hashing the growing byte sequence on every step; this keeps long
// matches linear instead of quadratic.
package lzw

import "encoding/binary"

// firstFreeCode is the first code assigned to a compound (non-singleton)
// dictionary entry.
const firstFreeCode = 256

// Encode compresses data with the dictionary seeded with the 256
// singleton byte sequences. It returns the code stream as little-endian
// uint16 pairs.
//
// Encode accepts empty input and returns empty output. It returns
// ErrDictionaryOverflow if the dictionary saturates before the input is
// fully consumed.
func Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	// children[code] maps the next byte to the code of the sequence
	// "entry for code, followed by that byte", for codes that have been
	// extended at least once. Singleton codes 0..255 are implicit: the
	// sequence [b] is always code uint16(b), so no seeding is needed
	// beyond reserving their slot in children.
	children := make([]map[byte]uint16, firstFreeCode, maxCode)
	nextCode := uint16(firstFreeCode)

	out := make([]byte, 0, len(data)+len(data)/2)
	emit := func(code uint16) {
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], code)
		out = append(out, tmp[:]...)
	}

	current := uint16(data[0])
	for _, b := range data[1:] {
		if child, ok := children[current][b]; ok {
			current = child
			continue
		}

		emit(current)

		if nextCode >= maxCode {
			return nil, ErrDictionaryOverflow
		}
		if children[current] == nil {
			children[current] = make(map[byte]uint16)
		}
		children[current][b] = nextCode
		children = append(children, nil)
		nextCode++

		current = uint16(b)
	}
	emit(current)

	return out, nil
}
