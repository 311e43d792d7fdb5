// Package palette implements the first stage of the pxc codec pipeline:
// mapping a raw RGBA pixel buffer to a small integer index stream plus the
// ordered color table those indices refer to.
//
// Palette order is first-encounter order, not sorted or frequency ranked.
// That ordering is observable: it is exactly what reverse lookup during
// Decode reproduces, so Encode and Decode are exact inverses of each other
// for any input with 256 or fewer distinct colors.
package palette

import "fmt"

// MaxColors is the largest number of distinct colors a palette can hold.
const MaxColors = 256

// Color is a single RGBA color, stored as four bytes in R, G, B, A order.
type Color [4]byte

// PaletteOverflowError is returned by Encode when a pixel buffer contains
// more than MaxColors distinct colors.
type PaletteOverflowError struct {
	// Attempted is the index that would have been assigned to the
	// 257th distinct color.
	Attempted int
}

func (e *PaletteOverflowError) Error() string {
	return fmt.Sprintf("palette: overflow, attempted to assign index %d (max %d colors)", e.Attempted, MaxColors)
}

// InvalidPixelDataLengthError is returned by Encode when the input buffer's
// length is not a multiple of 4.
type InvalidPixelDataLengthError struct {
	Length int
}

func (e *InvalidPixelDataLengthError) Error() string {
	return fmt.Sprintf("palette: invalid pixel data length %d, want a multiple of 4", e.Length)
}

// InvalidPaletteIndexError is returned by Decode when an index byte
// references a position outside the palette.
type InvalidPaletteIndexError struct {
	Index       int
	PaletteSize int
}

func (e *InvalidPaletteIndexError) Error() string {
	return fmt.Sprintf("palette: index %d exceeds palette size %d", e.Index, e.PaletteSize)
}

// Encode walks rgba front to back, 4 bytes at a time, and assigns each
// distinct color the next free index in first-encounter order. It returns
// the resulting palette and one index byte per pixel.
//
// Encode returns *InvalidPixelDataLengthError if len(rgba) is not a
// multiple of 4, and *PaletteOverflowError if a 257th distinct color is
// encountered.
func Encode(rgba []byte) ([]Color, []byte, error) {
	if len(rgba)%4 != 0 {
		return nil, nil, &InvalidPixelDataLengthError{Length: len(rgba)}
	}

	pixelCount := len(rgba) / 4
	seen := make(map[Color]byte, pixelCount)
	palette := make([]Color, 0, pixelCount)
	indices := make([]byte, 0, pixelCount)

	for i := 0; i < len(rgba); i += 4 {
		c := Color{rgba[i], rgba[i+1], rgba[i+2], rgba[i+3]}
		if idx, ok := seen[c]; ok {
			indices = append(indices, idx)
			continue
		}
		if len(palette) >= MaxColors {
			return nil, nil, &PaletteOverflowError{Attempted: len(palette)}
		}
		idx := byte(len(palette))
		palette = append(palette, c)
		seen[c] = idx
		indices = append(indices, idx)
	}

	return palette, indices, nil
}

// Decode expands a palette and index stream back into raw RGBA pixel
// bytes. It returns *InvalidPaletteIndexError if any index is not less
// than len(palette).
func Decode(palette []Color, indices []byte) ([]byte, error) {
	rgba := make([]byte, 0, len(indices)*4)
	for _, idx := range indices {
		if int(idx) >= len(palette) {
			return nil, &InvalidPaletteIndexError{Index: int(idx), PaletteSize: len(palette)}
		}
		c := palette[idx]
		rgba = append(rgba, c[0], c[1], c[2], c[3])
	}
	return rgba, nil
}
