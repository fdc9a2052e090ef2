// Command textdiff compares two text files and prints a highlighted diff.
//
// Usage:
//
//	textdiff [-chars] [-color auto|always|never] [-width n] fileA fileB
//
// The summary line goes to stderr and the rendered diff to stdout, so the
// diff can be piped without losing the status line. Exit codes: 0 when the
// inputs are identical, 1 when differences were found, 2 on usage or read
// errors.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jmadson/textdiff"
	"github.com/jmadson/textdiff/render"
)

func main() {
	chars := flag.Bool("chars", false, "compare character by character instead of line by line")
	color := flag.String("color", "auto", "colorize output: auto, always, or never")
	width := flag.Int("width", 0, "truncate rendered lines to this display width (0 = no limit)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	renderer, err := newRenderer(*color, *width)
	if err != nil {
		fmt.Fprintln(os.Stderr, "textdiff:", err)
		os.Exit(2)
	}

	textA, err := readFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "textdiff:", err)
		os.Exit(2)
	}
	textB, err := readFile(flag.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "textdiff:", err)
		os.Exit(2)
	}

	var summary string
	var res *textdiff.Result
	if *chars {
		summary, res = textdiff.DiffChars(textA, textB)
	} else {
		summary, res = textdiff.DiffLines(textA, textB)
	}

	fmt.Fprintln(os.Stderr, summary)
	if out := renderer.Render(res); out != "" {
		fmt.Println(out)
	}

	if res.Identical() {
		os.Exit(0)
	}
	os.Exit(1)
}

func newRenderer(color string, width int) (*render.Renderer, error) {
	var opts []render.Option
	if width > 0 {
		opts = append(opts, render.WithMaxWidth(width))
	}
	switch color {
	case "never":
		return render.Text(opts...), nil
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return render.ANSI(opts...), nil
	case "auto":
		// lipgloss detects the terminal profile; on a non-TTY the styles
		// degrade to plain text.
		return render.ANSI(opts...), nil
	default:
		return nil, fmt.Errorf("invalid -color value %q", color)
	}
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: textdiff [-chars] [-color auto|always|never] [-width n] fileA fileB")
	flag.PrintDefaults()
}
