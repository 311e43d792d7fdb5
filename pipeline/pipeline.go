// Package pipeline composes the three codec stages — palette, rledelta,
// and lzw — into the single Compress/Decompress pair the container format
// builds on.
//
// Each call is a pure function: no I/O, no shared state, no goroutines.
// A caller may invoke Compress or Decompress concurrently from multiple
// goroutines on disjoint inputs without synchronization.
package pipeline

import (
	"fmt"

	"github.com/pxcfmt/go-pxc/lzw"
	"github.com/pxcfmt/go-pxc/palette"
	"github.com/pxcfmt/go-pxc/rledelta"
)

// Result is the product of Compress: the palette the input pixels were
// quantized against, plus the LZW-compressed byte stream a container
// embeds alongside it.
type Result struct {
	Palette []palette.Color
	Data    []byte
}

// Compress runs the three-stage pipeline over a raw RGBA pixel buffer:
// palette quantization, RLE-delta encoding of the resulting index stream,
// then LZW compression of that.
//
// A single-pixel image produces a one-byte index stream, which rledelta
// cannot encode (see rledelta.ErrSingleByteInput); Compress special-cases
// it by skipping the RLE-delta stage entirely and LZW-compressing the
// lone index byte directly. Decompress mirrors this.
func Compress(rgba []byte) (Result, error) {
	pal, indices, err := palette.Encode(rgba)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: compress: palette stage: %w", err)
	}

	rleOut, err := encodeIndices(indices)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: compress: rledelta stage: %w", err)
	}

	lzwOut, err := lzw.Encode(rleOut)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: compress: lzw stage: %w", err)
	}

	return Result{Palette: pal, Data: lzwOut}, nil
}

// Decompress is the strict inverse of Compress.
func Decompress(r Result) ([]byte, error) {
	rleOut, err := lzw.Decode(r.Data)
	if err != nil {
		return nil, fmt.Errorf("pipeline: decompress: lzw stage: %w", err)
	}

	indices, err := decodeIndices(rleOut)
	if err != nil {
		return nil, fmt.Errorf("pipeline: decompress: rledelta stage: %w", err)
	}

	rgba, err := palette.Decode(r.Palette, indices)
	if err != nil {
		return nil, fmt.Errorf("pipeline: decompress: palette stage: %w", err)
	}

	return rgba, nil
}

// encodeIndices wraps rledelta.Encode with the single-pixel special case:
// an empty index stream encodes to empty, and a one-byte stream is passed
// through unencoded rather than routed into rledelta, which is undefined
// on one byte.
func encodeIndices(indices []byte) ([]byte, error) {
	switch len(indices) {
	case 0:
		return nil, nil
	case 1:
		return []byte{indices[0]}, nil
	default:
		return rledelta.Encode(indices)
	}
}

// decodeIndices is the inverse of encodeIndices.
func decodeIndices(data []byte) ([]byte, error) {
	switch len(data) {
	case 0:
		return nil, nil
	case 1:
		return []byte{data[0]}, nil
	default:
		return rledelta.Decode(data)
	}
}
