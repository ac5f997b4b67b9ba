// Package main provides the CLI tool for rendering lspace scenes offscreen.
//
// Usage:
//
//	lspace render [options]   Render a scene to PNG
//	lspace dump [options]     Print a scene's layout tree
//	lspace scenes             List the built-in scenes
//	lspace help               Show help
//
// Examples:
//
//	lspace render -scene hello -o hello.png
//	lspace render -scene paragraphs -text essay.txt -size 400x300 -size 800x600
//	lspace dump -scene borders -width 320
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `lspace - offscreen host for lspace presentations

Usage:
  lspace <command> [options]

Commands:
  render      Lay out a scene and render it to PNG
  dump        Lay out a scene and print its geometry tree
  scenes      List the built-in scenes
  version     Print version information
  help        Show this help message

Options (render, dump):
  -config f   Read settings from f (default lspace.toml if present)
  -scene s    Scene to build (default hello)
  -text f     Use the text in f as the scene's body text

Options (render):
  -o f        Output PNG path (default from config)
  -size WxH   Viewport size; repeat to render several sizes at once

Options (dump):
  -width W    Available width (default from config)
  -height H   Available height (default from config)

Examples:
  lspace render -scene hello -o hello.png
  lspace render -size 400x300 -size 800x600 -o out.png   Writes out-400x300.png and out-800x600.png
  lspace dump -scene paragraphs -text essay.txt -width 500
  LSPACE_DEBUG=/tmp/lspace.log lspace render              Log layout and render times
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		if err := runRender(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "dump":
		if err := runDump(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "scenes":
		listScenes(os.Stdout)
	case "version":
		fmt.Printf("lspace version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
