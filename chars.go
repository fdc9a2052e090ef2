package textdiff

import "fmt"

// DiffChars compares two texts code point by code point, with no line
// splitting. Opcode indices address []rune(textA) and []rune(textB). Equal
// inputs short-circuit without running the matcher.
//
// There is no Changed stat at this granularity: a replace contributes its A
// side to Deleted and its B side to Added. The summary reports the rune
// counts of both inputs and their absolute difference.
func DiffChars(textA, textB string, opts ...Option) (string, *Result) {
	lenA := len([]rune(textA))
	lenB := len([]rune(textB))

	if textA == textB {
		return identicalSummary, &Result{
			Granularity: ByRune,
			TextA:       textA,
			TextB:       textB,
		}
	}

	res := &Result{
		Granularity: ByRune,
		TextA:       textA,
		TextB:       textB,
		Ops:         Match(toRuneElements(textA), toRuneElements(textB), opts...),
	}

	for _, op := range res.Ops {
		switch op.Kind {
		case Delete:
			res.Stats.Deleted += op.AEnd - op.AStart
		case Insert:
			res.Stats.Added += op.BEnd - op.BStart
		case Replace:
			res.Stats.Deleted += op.AEnd - op.AStart
			res.Stats.Added += op.BEnd - op.BStart
		}
	}

	diff := lenA - lenB
	if diff < 0 {
		diff = -diff
	}
	summary := fmt.Sprintf("Text A: %d chars, text B: %d chars, length difference: %d chars.",
		lenA, lenB, diff)
	return summary, res
}
