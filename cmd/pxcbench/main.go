// pxcbench reports how well the pxc pipeline compresses a raw RGBA file,
// next to a general-purpose DEFLATE pass over the same bytes, as a sanity
// reference for how much of the win comes from the palette/RLE-delta
// stages versus dictionary coding alone.
//
// Usage:
//
//	pxcbench -w <width> -h <height> <input.rgba>
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/klauspost/compress/flate"

	"github.com/pxcfmt/go-pxc/pipeline"
)

func main() {
	width := flag.Uint("w", 0, "image width in pixels")
	height := flag.Uint("h", 0, "image height in pixels")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 || *width == 0 || *height == 0 {
		fmt.Fprintln(os.Stderr, "Usage: pxcbench -w <width> -h <height> <input.rgba>")
		os.Exit(2)
	}

	rgba, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pxcbench: reading %s: %v\n", args[0], err)
		os.Exit(2)
	}

	want := 4 * int(*width) * int(*height)
	if len(rgba) != want {
		fmt.Fprintf(os.Stderr, "pxcbench: %s has %d bytes, want %d (4*%d*%d)\n", args[0], len(rgba), want, *width, *height)
		os.Exit(2)
	}

	result, err := pipeline.Compress(rgba)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pxcbench: pipeline: %v\n", err)
		os.Exit(1)
	}

	deflated, err := deflate(rgba)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pxcbench: deflate: %v\n", err)
		os.Exit(1)
	}

	paletteBytes := len(result.Palette) * 4
	pxcTotal := paletteBytes + len(result.Data)

	fmt.Printf("input:            %8d bytes\n", len(rgba))
	fmt.Printf("palette:          %8d colors (%d bytes)\n", len(result.Palette), paletteBytes)
	fmt.Printf("pxc pipeline:     %8d bytes (palette + lzw), ratio %.3f\n", pxcTotal, ratio(len(rgba), pxcTotal))
	fmt.Printf("deflate (level 6):%8d bytes, ratio %.3f\n", len(deflated), ratio(len(rgba), len(deflated)))
}

func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return float64(compressed) / float64(original)
}
