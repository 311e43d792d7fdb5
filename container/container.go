// Package container implements the pxc file format: a fixed 4-byte magic,
// big-endian dimensions, an embedded palette, and the LZW byte stream the
// pipeline package produces, framed around it.
//
// Package container is the only layer that turns truncated or malformed
// input into the specific error kinds a host application distinguishes
// between; the pipeline and its stages assume the slices they're handed
// are already well-formed.
package container

import (
	"encoding/binary"
	"fmt"

	"github.com/pxcfmt/go-pxc/internal/xdr"
	"github.com/pxcfmt/go-pxc/palette"
	"github.com/pxcfmt/go-pxc/pipeline"
)

// Magic is the fixed 4-byte signature every pxc file begins with. There is
// no version negotiation: a future incompatible format requires a new
// magic rather than a version field bump.
var Magic = [4]byte{'P', 'X', 'C', '1'}

const (
	headerSize        = 4 + 2 + 2 + 1 // magic + width + height + palette length
	paletteEntrySize  = 4
	maxPaletteEntries = palette.MaxColors
)

// Image is the decoded form of a pxc file: its declared dimensions, the
// palette it embeds, and the fully expanded RGBA pixel buffer.
type Image struct {
	Width   uint16
	Height  uint16
	Palette []palette.Color
	RGBA    []byte
}

// InvalidHeaderError is returned by Decode when the input is shorter
// than the 4-byte magic or doesn't begin with Magic.
type InvalidHeaderError struct{}

func (e *InvalidHeaderError) Error() string {
	return "container: invalid or missing magic header"
}

// DimensionParsingFailedError is returned by Decode when the width or
// height field is truncated.
type DimensionParsingFailedError struct{}

func (e *DimensionParsingFailedError) Error() string {
	return "container: failed to parse image dimensions"
}

// InsufficientDataForPaletteSizeError is returned by Decode when the
// buffer ends before the palette-length byte.
type InsufficientDataForPaletteSizeError struct{}

func (e *InsufficientDataForPaletteSizeError) Error() string {
	return "container: insufficient data for palette size"
}

// UnexpectedEOFPaletteColorError is returned by Decode when the buffer
// runs out partway through the palette table.
type UnexpectedEOFPaletteColorError struct {
	Index int
}

func (e *UnexpectedEOFPaletteColorError) Error() string {
	return fmt.Sprintf("container: unexpected end of data while reading palette color #%d", e.Index)
}

// PaletteTooLargeError is returned by Encode when the pipeline produced
// more colors than the container can frame.
type PaletteTooLargeError struct {
	Size int
}

func (e *PaletteTooLargeError) Error() string {
	return fmt.Sprintf("container: palette size %d exceeds the maximum of %d colors", e.Size, maxPaletteEntries)
}

// encodePaletteLength and decodePaletteLength resolve the one-byte
// palette-length field's ambiguity at exactly 256 entries (a naive
// `len(palette) as u8` wraps 256 to 0, which is indistinguishable from an
// empty palette). This format defines the on-disk byte 0 to mean "256
// entries", since a u8 length field has no other way to represent 256.
// That convention is itself ambiguous at the other end: a genuinely empty
// palette (only possible for a zero-pixel image) also encodes to 0 and is
// read back as a 256-entry palette. This format does not special-case
// that collision further.
func encodePaletteLength(n int) byte {
	if n == maxPaletteEntries {
		return 0
	}
	return byte(n)
}

func decodePaletteLength(b byte) int {
	if b == 0 {
		return maxPaletteEntries
	}
	return int(b)
}

// Encode runs the compression pipeline over rgba and frames the result as
// a complete pxc file: magic, big-endian width and height, the palette
// length byte, the palette entries, then the LZW code stream to EOF.
//
// It returns *PaletteTooLargeError if the pipeline's palette exceeds 256
// colors (this cannot happen through palette.Encode itself, which already
// enforces the bound, but Encode re-checks it here since this is the
// layer that commits to the one-byte palette-length field).
func Encode(width, height uint16, rgba []byte) ([]byte, error) {
	result, err := pipeline.Compress(rgba)
	if err != nil {
		return nil, err
	}
	if len(result.Palette) > maxPaletteEntries {
		return nil, &PaletteTooLargeError{Size: len(result.Palette)}
	}

	w := xdr.NewBufferWriter(headerSize+len(result.Palette)*paletteEntrySize+len(result.Data), binary.BigEndian)
	w.WriteBytes(Magic[:])
	w.WriteUint16(width)
	w.WriteUint16(height)
	w.WriteUint8(encodePaletteLength(len(result.Palette)))
	for _, c := range result.Palette {
		w.WriteBytes(c[:])
	}
	w.WriteBytes(result.Data)

	return w.Bytes(), nil
}

// Decode parses a complete pxc file and runs the decompression pipeline
// over its embedded LZW stream, returning the fully expanded image.
func Decode(data []byte) (Image, error) {
	if len(data) < 4 || string(data[:4]) != string(Magic[:]) {
		return Image{}, &InvalidHeaderError{}
	}

	r := xdr.NewReader(data, binary.BigEndian)
	if _, err := r.ReadBytes(4); err != nil {
		return Image{}, &InvalidHeaderError{}
	}

	width, err := r.ReadUint16()
	if err != nil {
		return Image{}, &DimensionParsingFailedError{}
	}
	height, err := r.ReadUint16()
	if err != nil {
		return Image{}, &DimensionParsingFailedError{}
	}

	paletteLenByte, err := r.ReadUint8()
	if err != nil {
		return Image{}, &InsufficientDataForPaletteSizeError{}
	}
	paletteLen := decodePaletteLength(paletteLenByte)

	pal := make([]palette.Color, 0, paletteLen)
	for i := 0; i < paletteLen; i++ {
		entry, err := r.ReadBytes(paletteEntrySize)
		if err != nil {
			return Image{}, &UnexpectedEOFPaletteColorError{Index: i}
		}
		pal = append(pal, palette.Color{entry[0], entry[1], entry[2], entry[3]})
	}

	rgba, err := pipeline.Decompress(pipeline.Result{Palette: pal, Data: r.Remainder()})
	if err != nil {
		return Image{}, err
	}

	return Image{Width: width, Height: height, Palette: pal, RGBA: rgba}, nil
}
