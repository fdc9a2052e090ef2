package textdiff

import "testing"

func TestStringElement_Equal(t *testing.T) {
	a := StringElement("hello")
	b := StringElement("hello")
	c := StringElement("world")

	if !a.Equal(b) {
		t.Error("Expected a.Equal(b) to be true")
	}
	if a.Equal(c) {
		t.Error("Expected a.Equal(c) to be false")
	}
}

func TestStringElement_Hash(t *testing.T) {
	a := StringElement("hello")
	b := StringElement("hello")
	c := StringElement("world")

	if a.Hash() != b.Hash() {
		t.Error("Expected equal elements to have equal hashes")
	}
	if a.Hash() == c.Hash() {
		t.Error("Expected different elements to have different hashes (collision unlikely)")
	}
}

func TestRuneElement_Equal(t *testing.T) {
	a := RuneElement('x')
	b := RuneElement('x')
	c := RuneElement('y')

	if !a.Equal(b) {
		t.Error("Expected a.Equal(b) to be true")
	}
	if a.Equal(c) {
		t.Error("Expected a.Equal(c) to be false")
	}
	if a.Equal(StringElement("x")) {
		t.Error("Expected RuneElement to not equal a StringElement")
	}
}

func TestRuneElement_Hash(t *testing.T) {
	if RuneElement('界').Hash() != RuneElement('界').Hash() {
		t.Error("Expected equal runes to have equal hashes")
	}
	if RuneElement('a').Hash() == RuneElement('b').Hash() {
		t.Error("Expected distinct runes to have distinct hashes")
	}
}

func TestToElements(t *testing.T) {
	strs := []string{"a", "b", "c"}
	elems := toElements(strs)

	if len(elems) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elems))
	}

	for i, elem := range elems {
		se, ok := elem.(StringElement)
		if !ok {
			t.Errorf("element %d is not StringElement", i)
			continue
		}
		if string(se) != strs[i] {
			t.Errorf("element %d: expected %q, got %q", i, strs[i], se)
		}
	}
}

func TestToRuneElements(t *testing.T) {
	elems := toRuneElements("a界b")
	want := []rune{'a', '界', 'b'}

	if len(elems) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(elems))
	}
	for i, elem := range elems {
		re, ok := elem.(RuneElement)
		if !ok {
			t.Errorf("element %d is not RuneElement", i)
			continue
		}
		if rune(re) != want[i] {
			t.Errorf("element %d: expected %q, got %q", i, want[i], rune(re))
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "terminated lines",
			text: "a\nb\n",
			want: []string{"a\n", "b\n"},
		},
		{
			name: "unterminated final line",
			text: "a\nb",
			want: []string{"a\n", "b"},
		},
		{
			name: "blank lines retained",
			text: "a\n\n\nb\n",
			want: []string{"a\n", "\n", "\n", "b\n"},
		},
		{
			name: "crlf stays inside the line",
			text: "a\r\nb\r\n",
			want: []string{"a\r\n", "b\r\n"},
		},
		{
			name: "lone newline",
			text: "\n",
			want: []string{"\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("splitLines(%q) = %v, want %v", tt.text, got, tt.want)
			}
			rebuilt := ""
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tt.want[i])
				}
				rebuilt += got[i]
			}
			if rebuilt != tt.text {
				t.Errorf("concatenated lines %q do not reconstruct input %q", rebuilt, tt.text)
			}
		})
	}
}
