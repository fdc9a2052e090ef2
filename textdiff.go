// Package textdiff compares two texts hierarchically: at line granularity,
// and, for lines that were rewritten in place, again at character granularity.
//
// The matcher uses a longest-matching-block recursion (the strategy behind
// Python's difflib) rather than a minimal-edit-script algorithm:
//   - Index sequence B, scan A for the longest run of consecutive equal
//     elements, preferring the leftmost run on ties
//   - Recurse on the regions before and after the run
//   - Regions with no match become a single delete/insert/replace opcode
//
// This trades edit-script minimality for near-linear behavior on typical
// text and stable, deterministic output.
package textdiff

// OpKind identifies the kind of comparison opcode.
type OpKind int

const (
	// Equal means the ranges are identical in both sequences.
	Equal OpKind = iota
	// Insert means elements were added to B that are not in A.
	Insert
	// Delete means elements were removed from A that are not in B.
	Delete
	// Replace means both ranges are non-empty and differ.
	Replace
)

// String returns a string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// OpCode describes one comparison outcome over a contiguous span of both
// sequences.
//
// Opcodes returned by Match are contiguous and exhaustive: concatenating
// the A ranges in order reproduces all of A, and likewise for B. No two
// consecutive opcodes share a Kind.
type OpCode struct {
	Kind   OpKind
	AStart int // start index in sequence A (inclusive)
	AEnd   int // end index in sequence A (exclusive)
	BStart int // start index in sequence B (inclusive)
	BEnd   int // end index in sequence B (exclusive)
}

// Granularity is the unit of comparison for a Result.
type Granularity int

const (
	// ByLine compares texts line by line.
	ByLine Granularity = iota
	// ByRune compares texts code point by code point.
	ByRune
)

// Stats summarizes a comparison. For ByLine results the counts are lines:
// Changed counts the longer side of each replace opcode. For ByRune results
// the counts are code points, a replace contributes its A side to Deleted
// and its B side to Added, and Changed is always zero.
type Stats struct {
	Added   int
	Deleted int
	Changed int
}

// LinePair is one row of a replace block's nested character diff. Lines at
// the same offset within the block are paired positionally and carry
// rune-level opcodes; the leftover tail of an uneven block is reported as
// unpaired pure deletes or inserts.
type LinePair struct {
	// Kind is Replace for a paired row, Delete or Insert for an unpaired one.
	Kind OpKind
	// OldLine is the A-side line including any trailing terminator; empty
	// when Kind is Insert.
	OldLine string
	// NewLine is the B-side line; empty when Kind is Delete.
	NewLine string
	// Ops are rune-level opcodes for a paired row. Indices address
	// []rune(OldLine) and []rune(NewLine). Nil for unpaired rows.
	Ops []OpCode
}

// NestedDiff holds the per-line character diffs for one replace opcode of a
// ByLine Result.
type NestedDiff struct {
	// OpIndex is the index into Result.Ops of the Replace opcode.
	OpIndex int
	Pairs   []LinePair
}

// Result is the structured outcome of a comparison. It is built fresh per
// call and read-only once returned.
type Result struct {
	Granularity Granularity

	// TextA and TextB are the compared inputs, verbatim.
	TextA string
	TextB string

	// LinesA and LinesB are the inputs split into lines with terminators
	// retained. Nil for ByRune results.
	LinesA []string
	LinesB []string

	// Ops covers both inputs in order. For ByLine results the indices
	// address LinesA/LinesB; for ByRune results they address
	// []rune(TextA) and []rune(TextB). Empty when the inputs were equal.
	Ops []OpCode

	// Nested holds one entry per Replace opcode in Ops, in order. Nil for
	// ByRune results.
	Nested []NestedDiff

	Stats Stats
}

// Identical reports whether the comparison found no differences.
func (r *Result) Identical() bool {
	for _, op := range r.Ops {
		if op.Kind != Equal {
			return false
		}
	}
	return true
}

// options holds configuration for the matcher.
type options struct {
	autojunk bool
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		autojunk: true,
	}
}

// Option configures matcher behavior.
type Option func(*options)

// WithAutojunk enables or disables popular-element filtering: when B has at
// least 200 elements, elements occupying more than 1% of B are not used as
// match anchors (they still extend blocks found next to them). This keeps
// highly repetitive elements, like blank lines, from producing spurious
// alignments on large inputs.
// Default: true.
func WithAutojunk(enabled bool) Option {
	return func(o *options) {
		o.autojunk = enabled
	}
}
