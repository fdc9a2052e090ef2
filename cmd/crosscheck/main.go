// Comparison tool for validating textdiff output against other diff implementations
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	godiff "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jmadson/textdiff"
)

func main() {
	testCases := []struct {
		name string
		a, b string
	}{
		{
			name: "Single changed line",
			a:    "a\nb\nc\n",
			b:    "a\nx\nc\n",
		},
		{
			name: "Trailing insert",
			a:    "line1\nline2\n",
			b:    "line1\nline2\nline3\n",
		},
		{
			name: "Prose rewrite",
			a:    "The quick brown fox\njumps over\nthe lazy dog\n",
			b:    "A slow red fox\nleaps over\nthe sleeping cat\n",
		},
		{
			name: "Uneven replace block",
			a:    "keep\nold one\nold two\nold three\nkeep\n",
			b:    "keep\nnew one\nnew two\nkeep\n",
		},
	}

	// Add a large test case with scattered changes
	largeA := generateLargeText(500, 0)
	largeB := generateLargeText(500, 42)
	testCases = append(testCases, struct {
		name string
		a, b string
	}{
		name: "Large file (500 lines, scattered changes)",
		a:    largeA,
		b:    largeB,
	})

	failed := false
	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)

		start := time.Now()
		summary, res := textdiff.DiffLines(tc.a, tc.b)
		ourTime := time.Since(start)

		if err := checkInvariants(res); err != nil {
			fmt.Printf("INVARIANT VIOLATION: %v\n", err)
			failed = true
			continue
		}

		dmp := godiff.New()
		start = time.Now()
		goDiffs := dmp.DiffMain(tc.a, tc.b, true)
		goDiffTime := time.Since(start)

		ours := analyzeOps(res.Ops)
		theirs := analyzeGoDiff(goDiffs)

		fmt.Printf("textdiff: %v\n", ourTime)
		fmt.Printf("  %s\n", summary)
		fmt.Printf("  Opcodes: %d (equal: %d, delete: %d, insert: %d, replace: %d)\n",
			ours.total, ours.equal, ours.delete, ours.insert, ours.replace)
		fmt.Printf("  Change regions: %d\n", ours.changeRegions)

		fmt.Printf("go-diff:  %v\n", goDiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			theirs.total, theirs.equal, theirs.delete, theirs.insert)
		fmt.Printf("  Change regions: %d\n", theirs.changeRegions)
	}

	if failed {
		os.Exit(1)
	}
}

// checkInvariants verifies that the opcodes are contiguous and exhaustive
// on both sides and that no two consecutive opcodes share a kind.
func checkInvariants(res *textdiff.Result) error {
	var rebuiltA, rebuiltB strings.Builder
	prevKind := textdiff.OpKind(-1)
	nextA, nextB := 0, 0

	for i, op := range res.Ops {
		if op.AStart != nextA || op.BStart != nextB {
			return fmt.Errorf("opcode %d not contiguous: %+v", i, op)
		}
		if i > 0 && op.Kind == prevKind {
			return fmt.Errorf("opcodes %d and %d share kind %v", i-1, i, op.Kind)
		}
		for _, line := range res.LinesA[op.AStart:op.AEnd] {
			rebuiltA.WriteString(line)
		}
		for _, line := range res.LinesB[op.BStart:op.BEnd] {
			rebuiltB.WriteString(line)
		}
		nextA, nextB = op.AEnd, op.BEnd
		prevKind = op.Kind
	}

	if rebuiltA.String() != res.TextA {
		return fmt.Errorf("A ranges do not reconstruct text A")
	}
	if rebuiltB.String() != res.TextB {
		return fmt.Errorf("B ranges do not reconstruct text B")
	}
	return nil
}

type diffStats struct {
	total, equal, delete, insert, replace int
	changeRegions                         int
}

func analyzeOps(ops []textdiff.OpCode) diffStats {
	var s diffStats
	s.total = len(ops)
	inChange := false
	for _, op := range ops {
		switch op.Kind {
		case textdiff.Equal:
			s.equal++
			inChange = false
		case textdiff.Delete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case textdiff.Insert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case textdiff.Replace:
			s.replace++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
			inChange = false
		case godiff.DiffDelete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case godiff.DiffInsert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func generateLargeText(lines int, seed int) string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	// Introduce some changes based on seed
	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return strings.Join(result, "\n") + "\n"
}
