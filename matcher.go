package textdiff

// Longest-matching-block matcher.
//
// The approach follows Python difflib's SequenceMatcher rather than an
// edit-distance algorithm: find the single longest run of consecutive equal
// elements between the two ranges, emit it as Equal, and recurse on the
// regions before and after it. A range with no match at all collapses into
// one Delete, Insert, or Replace opcode, so recursion depth is bounded by
// the number of opcodes produced, not by sequence length.

// matchBlock is a maximal run of length consecutive elements that are equal
// starting at posA in A and posB in B.
type matchBlock struct {
	posA, posB, length int
}

// autojunkThreshold is the minimum B length before popular-element
// filtering applies.
const autojunkThreshold = 200

// matchIndex maps each distinct element of B to the ascending list of
// positions where it occurs. Keys are element hashes; lookups re-check
// equality to tolerate collisions.
type matchIndex struct {
	positions map[uint64][]int
}

// newMatchIndex indexes b. With autojunk enabled and b large enough,
// elements occupying more than 1% of b are dropped from the index: they
// make poor anchors and chasing their occurrence lists is what turns
// repetitive inputs quadratic.
func newMatchIndex(b []Element, autojunk bool) *matchIndex {
	positions := make(map[uint64][]int, len(b))
	for j, e := range b {
		h := e.Hash()
		positions[h] = append(positions[h], j)
	}

	if autojunk && len(b) >= autojunkThreshold {
		cutoff := len(b)/100 + 1
		for h, js := range positions {
			if len(js) > cutoff {
				delete(positions, h)
			}
		}
	}

	return &matchIndex{positions: positions}
}

// longestMatch finds the longest run of consecutive equal elements between
// a[alo:ahi] and b[blo:bhi]. Among runs of equal length it returns the one
// with the lowest start in A, then the lowest start in B, which keeps
// output deterministic and stable under small input perturbations.
// A zero-length result means the ranges share no indexable element.
func (idx *matchIndex) longestMatch(a, b []Element, alo, ahi, blo, bhi int) matchBlock {
	best := matchBlock{posA: alo, posB: blo}

	// runs[j] is the length of the run of equal elements ending at the
	// current scan position in A and position j in B.
	runs := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range idx.positions[a[i].Hash()] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			if !a[i].Equal(b[j]) {
				continue // hash collision
			}
			k := runs[j-1] + 1
			next[j] = k
			// Strict > keeps the leftmost run among equal-length ties:
			// lower A starts are reached at earlier i, and within one i
			// the candidate positions arrive in ascending j.
			if k > best.length {
				best = matchBlock{posA: i - k + 1, posB: j - k + 1, length: k}
			}
		}
		runs = next
	}

	if best.length == 0 {
		return best
	}

	// Popular elements filtered from the index never start a run, so the
	// best run can stop short of equal neighbors. Extend over them to keep
	// blocks maximal.
	for best.posA > alo && best.posB > blo && a[best.posA-1].Equal(b[best.posB-1]) {
		best.posA--
		best.posB--
		best.length++
	}
	for best.posA+best.length < ahi && best.posB+best.length < bhi &&
		a[best.posA+best.length].Equal(b[best.posB+best.length]) {
		best.length++
	}

	return best
}

// Match compares two element sequences and returns opcodes covering both in
// order. Either sequence may be empty; two empty sequences yield no
// opcodes. The result is deterministic for identical inputs.
func Match(a, b []Element, opts ...Option) []OpCode {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// Handle trivial cases
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	if len(a) == 0 {
		return []OpCode{{
			Kind:   Insert,
			AStart: 0,
			AEnd:   0,
			BStart: 0,
			BEnd:   len(b),
		}}
	}
	if len(b) == 0 {
		return []OpCode{{
			Kind:   Delete,
			AStart: 0,
			AEnd:   len(a),
			BStart: 0,
			BEnd:   0,
		}}
	}

	idx := newMatchIndex(b, o.autojunk)
	ops := matchRange(a, b, 0, len(a), 0, len(b), idx, nil)
	return mergeAdjacentOps(ops)
}

// matchRange appends opcodes covering a[alo:ahi] vs b[blo:bhi] to ops.
func matchRange(a, b []Element, alo, ahi, blo, bhi int, idx *matchIndex, ops []OpCode) []OpCode {
	m := idx.longestMatch(a, b, alo, ahi, blo, bhi)
	if m.length == 0 {
		switch {
		case alo == ahi && blo == bhi:
			return ops
		case blo == bhi:
			return append(ops, OpCode{Kind: Delete, AStart: alo, AEnd: ahi, BStart: blo, BEnd: bhi})
		case alo == ahi:
			return append(ops, OpCode{Kind: Insert, AStart: alo, AEnd: ahi, BStart: blo, BEnd: bhi})
		default:
			return append(ops, OpCode{Kind: Replace, AStart: alo, AEnd: ahi, BStart: blo, BEnd: bhi})
		}
	}

	ops = matchRange(a, b, alo, m.posA, blo, m.posB, idx, ops)
	ops = append(ops, OpCode{
		Kind:   Equal,
		AStart: m.posA,
		AEnd:   m.posA + m.length,
		BStart: m.posB,
		BEnd:   m.posB + m.length,
	})
	return matchRange(a, b, m.posA+m.length, ahi, m.posB+m.length, bhi, idx, ops)
}

// mergeAdjacentOps merges adjacent opcodes of the same kind. Recursion on
// an empty before/after region can leave, for example, two touching
// Replace opcodes.
func mergeAdjacentOps(ops []OpCode) []OpCode {
	if len(ops) <= 1 {
		return ops
	}

	result := make([]OpCode, 0, len(ops))
	current := ops[0]

	for i := 1; i < len(ops); i++ {
		op := ops[i]

		canMerge := current.Kind == op.Kind &&
			current.AEnd == op.AStart &&
			current.BEnd == op.BStart

		if canMerge {
			current.AEnd = op.AEnd
			current.BEnd = op.BEnd
		} else {
			result = append(result, current)
			current = op
		}
	}

	result = append(result, current)
	return result
}
