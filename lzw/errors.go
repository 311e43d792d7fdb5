package lzw

import (
	"errors"
	"fmt"
)

// maxCode is the first code value that can never be assigned: entries
// occupy codes 0..maxCode-1, and code 65535 itself is never assigned, so
// Decode rejects it as an invalid code.
const maxCode = 65535

// ErrDictionaryOverflow is returned by Encode and Decode when the
// dictionary would need to grow past its 65535-entry capacity.
var ErrDictionaryOverflow = errors.New("lzw: dictionary overflow, reached maximum code value of 65535")

// IncompleteCodeError is returned by Decode when the input's length isn't
// a whole number of 16-bit codes.
type IncompleteCodeError struct {
	Position int
}

func (e *IncompleteCodeError) Error() string {
	return fmt.Sprintf("lzw: incomplete code at position %d", e.Position)
}

// InvalidCodeError is returned by Decode when a code references an entry
// outside the dictionary and isn't the KwKwK special case.
type InvalidCodeError struct {
	Code     int
	DictSize int
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("lzw: invalid code %d, dictionary has %d entries", e.Code, e.DictSize)
}
