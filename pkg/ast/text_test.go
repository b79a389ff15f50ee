package ast

import (
	"fmt"
	"strings"
	"testing"
)

// splitText renders s as a NOTE line plus CONT lines at every newline and
// CONC lines of at most width bytes, the way producers wrap long values.
// Pieces never end in a space since trailing whitespace is not significant.
func splitText(s string, width int) string {
	var b strings.Builder
	for i, line := range strings.Split(s, "\n") {
		tag := "1 NOTE"
		if i > 0 {
			tag = "2 CONT"
		}
		piece, rest := cutPiece(line, width)
		fmt.Fprintf(&b, "%s %s\n", tag, piece)
		for rest != "" {
			piece, rest = cutPiece(rest, width)
			fmt.Fprintf(&b, "2 CONC %s\n", piece)
		}
	}
	return b.String()
}

func cutPiece(s string, width int) (piece, rest string) {
	if len(s) <= width {
		return s, ""
	}
	end := width
	for end > 1 && s[end-1] == ' ' {
		end--
	}
	return s[:end], s[end:]
}

func TestText_RoundTrip(t *testing.T) {
	inputs := []string{
		"short",
		"This note is long enough to need several CONC lines to carry it",
		"first line\nsecond line\nthird",
		"trailing break\nx",
		"a\nb\nc\nd",
		"email someone@@example.com",
	}

	for _, want := range inputs {
		t.Run(want, func(t *testing.T) {
			tree, err := BuildString("0 @N1@ NOTE\n" + splitText(want, 7))
			if err != nil {
				t.Fatalf("BuildString: %v", err)
			}
			note, ok := tree.Child(tree.Roots()[0], "NOTE")
			if !ok {
				t.Fatal("NOTE child missing")
			}
			if got := tree.Text(note); got != Unescape(want) {
				t.Errorf("Text() = %q, want %q", got, Unescape(want))
			}
		})
	}
}

func TestText_ConcAndCont(t *testing.T) {
	text := "0 @N1@ NOTE This is a lo\n1 CONC ng note\n1 CONT second line\n1 CONT\n1 CONC end\n1 SOUR @S1@\n"
	tree, err := BuildString(text)
	if err != nil {
		t.Fatalf("BuildString: %v", err)
	}

	got := tree.Text(tree.Roots()[0])
	want := "This is a long note\nsecond line\nend"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestUnescape(t *testing.T) {
	tests := map[string]string{
		"plain":         "plain",
		"a@@b":          "a@b",
		"@@@@":          "@@",
		"no escape @ x": "no escape @ x",
	}
	for in, want := range tests {
		if got := Unescape(in); got != want {
			t.Errorf("Unescape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPointer(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"@I1@", true},
		{"@F100@", true},
		{"@@", false},
		{"@I1", false},
		{"John /Smith/", false},
		{"@#DGREGORIAN@ 1900", false},
		{"@I1@ extra", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := Pointer(tt.value); ok != tt.ok {
			t.Errorf("Pointer(%q) ok = %v, want %v", tt.value, ok, tt.ok)
		}
	}
}
