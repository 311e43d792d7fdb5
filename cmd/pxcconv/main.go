// pxcconv converts between raw RGBA pixel files and pxc container files.
//
// The codec core never touches a filesystem; pxcconv is the thin host
// collaborator that supplies the RGBA buffer and dimensions on encode,
// and writes the decoded RGBA buffer back out on decode.
//
// Usage:
//
//	pxcconv encode -w <width> -h <height> <input.rgba> <output.pxc>
//	pxcconv decode <input.pxc> <output.rgba>
//
// The raw RGBA file is exactly 4*width*height bytes, R,G,B,A per pixel,
// with no header of its own.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pxcfmt/go-pxc/container"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	case "-h", "--help":
		printUsage()
		os.Exit(0)
	case "--version":
		fmt.Printf("pxcconv version %s\n", version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	width := fs.Uint("w", 0, "image width in pixels")
	height := fs.Uint("h", 0, "image height in pixels")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 2 || *width == 0 || *height == 0 {
		fmt.Fprintln(os.Stderr, "Usage: pxcconv encode -w <width> -h <height> <input.rgba> <output.pxc>")
		os.Exit(2)
	}

	rgba, err := os.ReadFile(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pxcconv: reading %s: %v\n", rest[0], err)
		os.Exit(2)
	}

	want := 4 * int(*width) * int(*height)
	if len(rgba) != want {
		fmt.Fprintf(os.Stderr, "pxcconv: %s has %d bytes, want %d (4*%d*%d)\n", rest[0], len(rgba), want, *width, *height)
		os.Exit(2)
	}

	data, err := container.Encode(uint16(*width), uint16(*height), rgba)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pxcconv: encode: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(rest[1], data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "pxcconv: writing %s: %v\n", rest[1], err)
		os.Exit(2)
	}

	fmt.Printf("%s: %d bytes -> %s: %d bytes\n", rest[0], len(rgba), rest[1], len(data))
}

func runDecode(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: pxcconv decode <input.pxc> <output.rgba>")
		os.Exit(2)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pxcconv: reading %s: %v\n", args[0], err)
		os.Exit(2)
	}

	img, err := container.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pxcconv: decode: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(args[1], img.RGBA, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "pxcconv: writing %s: %v\n", args[1], err)
		os.Exit(2)
	}

	fmt.Printf("%s: %dx%d, %d palette colors -> %s: %d bytes\n",
		args[0], img.Width, img.Height, len(img.Palette), args[1], len(img.RGBA))
}

func printUsage() {
	fmt.Println(`Usage:
  pxcconv encode -w <width> -h <height> <input.rgba> <output.pxc>
  pxcconv decode <input.pxc> <output.rgba>

Convert between raw RGBA pixel files and pxc container files.`)
}
