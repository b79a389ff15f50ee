package ast

import "strings"

// Text returns the value of id with its immediate CONC and CONT children
// folded in, in document order: CONC appends its value directly, CONT
// appends a newline and then its value. Escaped "@@" becomes "@".
func (t *Tree) Text(id NodeID) string {
	n := &t.nodes[id]

	var b strings.Builder
	b.WriteString(n.Value)
	for _, c := range n.Children {
		child := &t.nodes[c]
		switch child.Tag {
		case TagConc:
			b.WriteString(child.Value)
		case TagCont:
			b.WriteByte('\n')
			b.WriteString(child.Value)
		}
	}
	return Unescape(b.String())
}

// IsContinuation reports whether tag is CONC or CONT.
func IsContinuation(tag string) bool {
	return tag == TagConc || tag == TagCont
}

// Unescape replaces the "@@" escape with a single "@".
func Unescape(s string) string {
	if !strings.Contains(s, "@@") {
		return s
	}
	return strings.ReplaceAll(s, "@@", "@")
}

// Pointer reports whether value is a bare cross-reference such as "@I1@"
// and returns it unchanged if so.
func Pointer(value string) (string, bool) {
	if len(value) < 3 || value[0] != '@' || value[len(value)-1] != '@' {
		return "", false
	}
	inner := value[1 : len(value)-1]
	if inner[0] == '#' || strings.ContainsAny(inner, "@ \t") {
		return "", false
	}
	return value, true
}
