package textdiff

import "fmt"

// identicalSummary is the status line for inputs with no differences.
const identicalSummary = "The two texts are identical."

// DiffLines compares two texts line by line. Lines retain their trailing
// terminators, so concatenating the ranges covered by the opcodes
// reconstructs each input exactly. Every Replace opcode additionally gets a
// nested character-level diff: line k of its A side is paired with line k
// of its B side, and the leftover tail of an uneven block is reported as
// unpaired deletes or inserts.
//
// The returned summary is a display-ready status line; its exact wording is
// not part of the contract. Equal inputs short-circuit without running the
// matcher.
func DiffLines(textA, textB string, opts ...Option) (string, *Result) {
	if textA == textB {
		return identicalSummary, &Result{
			Granularity: ByLine,
			TextA:       textA,
			TextB:       textB,
			LinesA:      splitLines(textA),
			LinesB:      splitLines(textB),
		}
	}

	linesA := splitLines(textA)
	linesB := splitLines(textB)

	res := &Result{
		Granularity: ByLine,
		TextA:       textA,
		TextB:       textB,
		LinesA:      linesA,
		LinesB:      linesB,
		Ops:         Match(toElements(linesA), toElements(linesB), opts...),
	}

	for i, op := range res.Ops {
		switch op.Kind {
		case Delete:
			res.Stats.Deleted += op.AEnd - op.AStart
		case Insert:
			res.Stats.Added += op.BEnd - op.BStart
		case Replace:
			m := op.AEnd - op.AStart
			n := op.BEnd - op.BStart
			// A replace touches max(m, n) output lines.
			if m > n {
				res.Stats.Changed += m
			} else {
				res.Stats.Changed += n
			}
			res.Nested = append(res.Nested, NestedDiff{
				OpIndex: i,
				Pairs:   pairLines(linesA[op.AStart:op.AEnd], linesB[op.BStart:op.BEnd], opts),
			})
		}
	}

	summary := fmt.Sprintf("Diff stats: %d lines deleted, %d lines added, %d lines changed.",
		res.Stats.Deleted, res.Stats.Added, res.Stats.Changed)
	return summary, res
}

// pairLines builds the nested character diff for one replace block using
// positional pairing: row k of the old side against row k of the new side.
// Pairing by content similarity would give nicer output when lines are
// reordered within a block, but it would change which rows align and what
// the diff costs, so the positional rule is kept deliberately.
func pairLines(oldLines, newLines []string, opts []Option) []LinePair {
	paired := len(oldLines)
	if len(newLines) < paired {
		paired = len(newLines)
	}

	pairs := make([]LinePair, 0, len(oldLines)+len(newLines)-paired)
	for k := 0; k < paired; k++ {
		pairs = append(pairs, LinePair{
			Kind:    Replace,
			OldLine: oldLines[k],
			NewLine: newLines[k],
			Ops:     Match(toRuneElements(oldLines[k]), toRuneElements(newLines[k]), opts...),
		})
	}
	for _, line := range oldLines[paired:] {
		pairs = append(pairs, LinePair{Kind: Delete, OldLine: line})
	}
	for _, line := range newLines[paired:] {
		pairs = append(pairs, LinePair{Kind: Insert, NewLine: line})
	}
	return pairs
}
