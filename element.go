package textdiff

import "hash/fnv"

// Element represents a comparable unit (line, rune).
// Implementations must provide equality comparison and hashing.
type Element interface {
	// Equal reports whether this element is equal to another.
	Equal(other Element) bool
	// Hash returns a hash value for this element.
	// Equal elements must have equal hashes.
	Hash() uint64
}

// StringElement is the common case for line comparison.
type StringElement string

// Equal reports whether s equals other.
// Returns false if other is not a StringElement.
func (s StringElement) Equal(other Element) bool {
	o, ok := other.(StringElement)
	if !ok {
		return false
	}
	return s == o
}

// Hash returns a FNV-1a hash of the string.
func (s StringElement) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// RuneElement is a single Unicode code point, the unit of character-mode
// comparison.
type RuneElement rune

// Equal reports whether r equals other.
// Returns false if other is not a RuneElement.
func (r RuneElement) Equal(other Element) bool {
	o, ok := other.(RuneElement)
	if !ok {
		return false
	}
	return r == o
}

// Hash returns the code point itself; distinct runes never collide.
func (r RuneElement) Hash() uint64 {
	return uint64(r)
}

// toElements converts a slice of strings to a slice of Elements.
func toElements(strs []string) []Element {
	elems := make([]Element, len(strs))
	for i, s := range strs {
		elems[i] = StringElement(s)
	}
	return elems
}

// toRuneElements converts a string to a slice of per-rune Elements.
func toRuneElements(s string) []Element {
	runes := []rune(s)
	elems := make([]Element, len(runes))
	for i, r := range runes {
		elems[i] = RuneElement(r)
	}
	return elems
}

// splitLines splits text into lines, retaining each line's trailing
// terminator so that concatenating the result reproduces text exactly.
// The final line may be unterminated.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
