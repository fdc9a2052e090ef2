// Package render converts textdiff results into terminal output. It is a
// presentation collaborator: it consumes the structured result through its
// public surface only and owns every styling decision.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jmadson/textdiff"
)

// ANSI 256-color palette: light backgrounds for whole lines, darker ones
// for the changed spans inside them, so nested character diffs read as a
// second level of emphasis.
const (
	colorDeletedLine  = lipgloss.Color("224")
	colorDeletedSpan  = lipgloss.Color("217")
	colorInsertedLine = lipgloss.Color("194")
	colorInsertedSpan = lipgloss.Color("114")
	colorText         = lipgloss.Color("0")
)

// Renderer renders a textdiff.Result as text. Equal content is plain;
// deleted content is struck through on a red background; inserted content
// sits on a green background. Within a replaced line pair, the rune spans
// that actually changed are bold on a stronger background.
type Renderer struct {
	equalLine    lipgloss.Style
	deletedLine  lipgloss.Style
	insertedLine lipgloss.Style
	deletedSpan  lipgloss.Style
	insertedSpan lipgloss.Style
	maxWidth     int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMaxWidth truncates each rendered line to at most width display cells,
// measured before styling. 0 disables truncation.
// Default: 0.
func WithMaxWidth(width int) Option {
	return func(r *Renderer) {
		r.maxWidth = width
	}
}

// ANSI returns a Renderer that colors output with ANSI escape sequences.
// The active lipgloss color profile decides how the palette degrades on
// less capable terminals.
func ANSI(opts ...Option) *Renderer {
	r := &Renderer{
		equalLine: lipgloss.NewStyle(),
		deletedLine: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorDeletedLine).
			Strikethrough(true),
		insertedLine: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorInsertedLine),
		deletedSpan: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorDeletedSpan).
			Strikethrough(true).
			Bold(true),
		insertedSpan: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorInsertedSpan).
			Bold(true),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Text returns a Renderer that emits no styling, only the "  "/"-"/"+"
// gutter prefixes.
func Text(opts ...Option) *Renderer {
	plain := lipgloss.NewStyle()
	r := &Renderer{
		equalLine:    plain,
		deletedLine:  plain,
		insertedLine: plain,
		deletedSpan:  plain,
		insertedSpan: plain,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders res. Identical inputs render as the empty string; callers
// are expected to show the summary line instead.
func (r *Renderer) Render(res *textdiff.Result) string {
	if len(res.Ops) == 0 {
		return ""
	}
	if res.Granularity == textdiff.ByRune {
		return r.renderRunes(res)
	}
	return r.renderLines(res)
}

// segment is a run of text under a single style.
type segment struct {
	text  string
	style lipgloss.Style
}

func (r *Renderer) renderLines(res *textdiff.Result) string {
	var out []string
	nested := res.Nested

	for i, op := range res.Ops {
		switch op.Kind {
		case textdiff.Equal:
			for _, line := range res.LinesA[op.AStart:op.AEnd] {
				out = append(out, r.flatten([]segment{{"  " + trimEOL(line), r.equalLine}}))
			}
		case textdiff.Delete:
			for _, line := range res.LinesA[op.AStart:op.AEnd] {
				out = append(out, r.flatten([]segment{{"- " + trimEOL(line), r.deletedLine}}))
			}
		case textdiff.Insert:
			for _, line := range res.LinesB[op.BStart:op.BEnd] {
				out = append(out, r.flatten([]segment{{"+ " + trimEOL(line), r.insertedLine}}))
			}
		case textdiff.Replace:
			for len(nested) > 0 && nested[0].OpIndex < i {
				nested = nested[1:]
			}
			if len(nested) == 0 || nested[0].OpIndex != i {
				// No nested diff supplied; fall back to plain old/new rows.
				for _, line := range res.LinesA[op.AStart:op.AEnd] {
					out = append(out, r.flatten([]segment{{"- " + trimEOL(line), r.deletedLine}}))
				}
				for _, line := range res.LinesB[op.BStart:op.BEnd] {
					out = append(out, r.flatten([]segment{{"+ " + trimEOL(line), r.insertedLine}}))
				}
				continue
			}
			for _, pair := range nested[0].Pairs {
				out = append(out, r.renderPair(pair)...)
			}
			nested = nested[1:]
		}
	}

	return strings.Join(out, "\n")
}

// renderPair renders one row of a replace block: the old line above the new
// line, each with its changed rune spans emphasized.
func (r *Renderer) renderPair(pair textdiff.LinePair) []string {
	switch pair.Kind {
	case textdiff.Delete:
		return []string{r.flatten([]segment{{"- " + trimEOL(pair.OldLine), r.deletedLine}})}
	case textdiff.Insert:
		return []string{r.flatten([]segment{{"+ " + trimEOL(pair.NewLine), r.insertedLine}})}
	}

	oldRunes := []rune(trimEOL(pair.OldLine))
	newRunes := []rune(trimEOL(pair.NewLine))

	oldSegs := []segment{{"- ", r.deletedLine}}
	newSegs := []segment{{"+ ", r.insertedLine}}
	for _, op := range pair.Ops {
		// Ops index the untrimmed lines; clamp away the terminator.
		a1, a2 := clamp(op.AStart, len(oldRunes)), clamp(op.AEnd, len(oldRunes))
		b1, b2 := clamp(op.BStart, len(newRunes)), clamp(op.BEnd, len(newRunes))
		switch op.Kind {
		case textdiff.Equal:
			oldSegs = append(oldSegs, segment{string(oldRunes[a1:a2]), r.deletedLine})
			newSegs = append(newSegs, segment{string(newRunes[b1:b2]), r.insertedLine})
		case textdiff.Delete:
			oldSegs = append(oldSegs, segment{string(oldRunes[a1:a2]), r.deletedSpan})
		case textdiff.Insert:
			newSegs = append(newSegs, segment{string(newRunes[b1:b2]), r.insertedSpan})
		case textdiff.Replace:
			oldSegs = append(oldSegs, segment{string(oldRunes[a1:a2]), r.deletedSpan})
			newSegs = append(newSegs, segment{string(newRunes[b1:b2]), r.insertedSpan})
		}
	}

	return []string{r.flatten(oldSegs), r.flatten(newSegs)}
}

// renderRunes renders a character-granularity result as one flowed text.
// Replaces appear as their deleted span followed by their inserted span.
func (r *Renderer) renderRunes(res *textdiff.Result) string {
	runesA := []rune(res.TextA)
	runesB := []rune(res.TextB)

	var b strings.Builder
	for _, op := range res.Ops {
		switch op.Kind {
		case textdiff.Equal:
			b.WriteString(r.equalLine.Render(string(runesA[op.AStart:op.AEnd])))
		case textdiff.Delete:
			b.WriteString(r.deletedLine.Render(string(runesA[op.AStart:op.AEnd])))
		case textdiff.Insert:
			b.WriteString(r.insertedLine.Render(string(runesB[op.BStart:op.BEnd])))
		case textdiff.Replace:
			b.WriteString(r.deletedLine.Render(string(runesA[op.AStart:op.AEnd])))
			b.WriteString(r.insertedLine.Render(string(runesB[op.BStart:op.BEnd])))
		}
	}
	return b.String()
}

// flatten styles each segment and concatenates, truncating first when a max
// width is set.
func (r *Renderer) flatten(segs []segment) string {
	if r.maxWidth > 0 {
		segs = clipSegments(segs, r.maxWidth)
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.style.Render(s.text))
	}
	return b.String()
}

// clipSegments truncates a segment list to max display cells.
func clipSegments(segs []segment, max int) []segment {
	width := 0
	for i, s := range segs {
		w := runewidth.StringWidth(s.text)
		if width+w <= max {
			width += w
			continue
		}
		remaining := max - width
		if remaining <= 0 {
			return segs[:i]
		}
		clipped := runewidth.Truncate(s.text, remaining, "…")
		out := make([]segment, 0, i+1)
		out = append(out, segs[:i]...)
		if clipped != "" {
			out = append(out, segment{clipped, s.style})
		}
		return out
	}
	return segs
}

// trimEOL strips one trailing line terminator, if present.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func clamp(n, max int) int {
	if n > max {
		return max
	}
	return n
}
